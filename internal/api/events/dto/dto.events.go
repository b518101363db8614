// Package dto - DTO cho domain events.
package dto

// EventCreateInput dữ liệu tạo sự kiện mới. registeredCount/attendedCount/
// revenue là rollup, không nhận từ client.
type EventCreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	EventDate   int64   `json:"eventDate" validate:"required,gt=0"`
	Capacity    int     `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	TicketPrice float64 `json:"ticketPrice,omitempty" validate:"omitempty,gte=0"`
	Expenses    float64 `json:"expenses,omitempty" validate:"omitempty,gte=0"`
	CampaignID  string  `json:"campaignId,omitempty" validate:"omitempty,mongodb"`
}

// EventUpdateInput dữ liệu cập nhật sự kiện (partial update).
type EventUpdateInput struct {
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	EventDate   int64   `json:"eventDate,omitempty" validate:"omitempty,gt=0"`
	Capacity    int     `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	TicketPrice float64 `json:"ticketPrice,omitempty" validate:"omitempty,gte=0"`
	Expenses    float64 `json:"expenses,omitempty" validate:"omitempty,gte=0"`
}

// AttendanceCreateInput dữ liệu đăng ký tham dự sự kiện.
type AttendanceCreateInput struct {
	EventID    string  `json:"eventId" validate:"required,mongodb"`
	ContactID  string  `json:"contactId" validate:"required,mongodb"`
	AmountPaid float64 `json:"amountPaid,omitempty" validate:"omitempty,gte=0"`
	Notes      string  `json:"notes,omitempty"`
}

// AttendanceUpdateInput dữ liệu cập nhật đăng ký. Status đổi qua các route
// check-in/cancel để rollup của sự kiện được tính lại.
type AttendanceUpdateInput struct {
	Notes string `json:"notes,omitempty"`
}
