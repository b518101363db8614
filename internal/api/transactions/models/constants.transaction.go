package models

// Loại giao dịch
const (
	TxTypeDonation   = "donation"   // Đóng góp — loại duy nhất tính vào giving của contact
	TxTypeEventFee   = "event_fee"  // Phí tham dự sự kiện
	TxTypeMembership = "membership" // Phí hội viên
	TxTypeOther      = "other"      // Khác
)

// Trạng thái giao dịch
const (
	TxStatusPending    = "pending"
	TxStatusProcessing = "processing"
	TxStatusCompleted  = "completed"
	TxStatusFailed     = "failed"
	TxStatusCancelled  = "cancelled"
	TxStatusRefunded   = "refunded"
	TxStatusDisputed   = "disputed"
)

// allowedTransitions liệt kê các chuyển trạng thái hợp lệ.
// completed chỉ được sang refunded/disputed; failed, cancelled, disputed là
// trạng thái cuối; refunded còn có thể bị dispute.
var allowedTransitions = map[string][]string{
	TxStatusPending:    {TxStatusProcessing, TxStatusCompleted, TxStatusFailed, TxStatusCancelled},
	TxStatusProcessing: {TxStatusCompleted, TxStatusFailed, TxStatusCancelled},
	TxStatusCompleted:  {TxStatusRefunded, TxStatusDisputed},
	TxStatusFailed:     {},
	TxStatusCancelled:  {},
	TxStatusRefunded:   {TxStatusDisputed},
	TxStatusDisputed:   {},
}

// IsValidStatus kiểm tra status có nằm trong tập trạng thái hợp lệ không.
func IsValidStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

// CanTransition kiểm tra chuyển trạng thái from → to có hợp lệ không.
func CanTransition(from, to string) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// IsCountableDonation: giao dịch tính vào totalLifetimeGiving/donationCount
// của contact — phải vừa là donation vừa đã completed.
func IsCountableDonation(txType, status string) bool {
	return txType == TxTypeDonation && status == TxStatusCompleted
}

// CountsTowardRollups: giao dịch tính vào rollup của campaign/pledge —
// chỉ cần completed, không phân biệt loại.
func CountsTowardRollups(status string) bool {
	return status == TxStatusCompleted
}

// Trạng thái pledge
const (
	PledgeStatusActive    = "active"
	PledgeStatusFulfilled = "fulfilled"
	PledgeStatusOverdue   = "overdue"
	PledgeStatusCancelled = "cancelled"
)

// Tần suất đóng góp định kỳ
const (
	FrequencyWeekly     = "weekly"
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencySemiAnnual = "semi_annual"
	FrequencyAnnual     = "annual"
)

// AllFrequencies liệt kê các tần suất hợp lệ.
var AllFrequencies = []string{
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyQuarterly,
	FrequencySemiAnnual,
	FrequencyAnnual,
}

// Trạng thái recurring donation
const (
	RecurringStatusActive    = "active"
	RecurringStatusPaused    = "paused"
	RecurringStatusCancelled = "cancelled"
)
