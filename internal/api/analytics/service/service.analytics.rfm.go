// Package analyticssvc - Engine phân tích donor: tính aggregate giving,
// chấm điểm RFM, rollup campaign/pledge và trigger coordinator.
package analyticssvc

import (
	"fmt"

	contactmodels "arts_crm/internal/api/contacts/models"
)

const millisPerDay = 24 * 60 * 60 * 1000

// ComputeRecencyScore chấm điểm Recency (1-5) từ số ngày kể từ donation gần
// nhất. lastDonationAt ≤ 0 (chưa có donation) nhận điểm phạt tối đa: 1.
func ComputeRecencyScore(lastDonationAt, nowMilli int64) int {
	if lastDonationAt <= 0 {
		return 1
	}
	days := (nowMilli - lastDonationAt) / millisPerDay
	switch {
	case days <= 90:
		return 5
	case days <= 180:
		return 4
	case days <= 365:
		return 3
	case days <= 730:
		return 2
	default:
		return 1
	}
}

// ComputeFrequencyScore chấm điểm Frequency (1-5) từ số donation đã hoàn tất.
func ComputeFrequencyScore(donationCount int) int {
	switch {
	case donationCount >= 10:
		return 5
	case donationCount >= 5:
		return 4
	case donationCount >= 3:
		return 3
	case donationCount >= 1:
		return 2
	default:
		return 1
	}
}

// ComputeMonetaryScore chấm điểm Monetary (1-5) từ tổng giá trị donation.
func ComputeMonetaryScore(totalLifetimeGiving float64) int {
	switch {
	case totalLifetimeGiving >= 1000:
		return 5
	case totalLifetimeGiving >= 500:
		return 4
	case totalLifetimeGiving >= 100:
		return 3
	case totalLifetimeGiving >= 25:
		return 2
	default:
		return 1
	}
}

// ComputeDonorSegment gán segment từ bộ ba điểm R/F/M, xét theo đúng thứ tự
// ưu tiên — luật khớp đầu tiên thắng.
func ComputeDonorSegment(r, f, m int) string {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return contactmodels.SegmentChampions
	case r >= 4 && f >= 3 && m >= 3:
		return contactmodels.SegmentLoyalCustomers
	case r >= 4 && f <= 2:
		return contactmodels.SegmentNewCustomers
	case r <= 2 && f >= 3 && m >= 3:
		return contactmodels.SegmentAtRisk
	default:
		return contactmodels.SegmentNeedsAttention
	}
}

// ComputeRFM tính chuỗi điểm "RFM" (3 chữ số, mỗi chữ số 1-5) và segment.
func ComputeRFM(lastDonationAt int64, donationCount int, totalLifetimeGiving float64, nowMilli int64) (string, string) {
	r := ComputeRecencyScore(lastDonationAt, nowMilli)
	f := ComputeFrequencyScore(donationCount)
	m := ComputeMonetaryScore(totalLifetimeGiving)
	return fmt.Sprintf("%d%d%d", r, f, m), ComputeDonorSegment(r, f, m)
}
