package dto

// RecurringDonationCreateInput dữ liệu tạo lịch đóng góp định kỳ.
// paymentCount/totalCollected/lastPaymentDate do ProcessRecurringPayment ghi.
type RecurringDonationCreateInput struct {
	ContactID     string  `json:"contactId" validate:"required,mongodb"`
	CampaignID    string  `json:"campaignId,omitempty" validate:"omitempty,mongodb"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Frequency     string  `json:"frequency" validate:"required,oneof=weekly monthly quarterly semi_annual annual"`
	StartDate     int64   `json:"startDate,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// RecurringDonationUpdateInput dữ liệu cập nhật lịch đóng góp định kỳ.
type RecurringDonationUpdateInput struct {
	Amount        float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Frequency     string  `json:"frequency,omitempty" validate:"omitempty,oneof=weekly monthly quarterly semi_annual annual"`
	Status        string  `json:"status,omitempty" validate:"omitempty,oneof=active paused cancelled"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}
