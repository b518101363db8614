// Package analyticssvc - Test thang điểm RFM và phân segment donor.
package analyticssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	contactmodels "arts_crm/internal/api/contacts/models"
)

const dayMilli = int64(24 * 60 * 60 * 1000)

func TestComputeRecencyScore(t *testing.T) {
	now := int64(1_700_000_000_000)

	cases := []struct {
		name string
		last int64
		want int
	}{
		{"chưa từng donate (lastDonationAt=0)", 0, 1},
		{"donate hôm nay", now, 5},
		{"90 ngày trước (biên trên của 5)", now - 90*dayMilli, 5},
		{"91 ngày trước", now - 91*dayMilli, 4},
		{"180 ngày trước", now - 180*dayMilli, 4},
		{"365 ngày trước", now - 365*dayMilli, 3},
		{"730 ngày trước", now - 730*dayMilli, 2},
		{"731 ngày trước", now - 731*dayMilli, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRecencyScore(tc.last, now)
			if got != tc.want {
				t.Errorf("ComputeRecencyScore(%s) = %d, muốn %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestComputeFrequencyScore(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 1},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{9, 4},
		{10, 5},
		{100, 5},
	}
	for _, tc := range cases {
		got := ComputeFrequencyScore(tc.count)
		if got != tc.want {
			t.Errorf("ComputeFrequencyScore(%d) = %d, muốn %d", tc.count, got, tc.want)
		}
	}
}

func TestComputeMonetaryScore(t *testing.T) {
	cases := []struct {
		total float64
		want  int
	}{
		{0, 1},
		{24.99, 1},
		{25, 2},
		{99.99, 2},
		{100, 3},
		{499.99, 3},
		{500, 4},
		{999.99, 4},
		{1000, 5},
	}
	for _, tc := range cases {
		got := ComputeMonetaryScore(tc.total)
		if got != tc.want {
			t.Errorf("ComputeMonetaryScore(%.2f) = %d, muốn %d", tc.total, got, tc.want)
		}
	}
}

// Thứ tự ưu tiên segment: champions > loyal_customers > new_customers > at_risk > needs_attention.
func TestComputeDonorSegment_Priority(t *testing.T) {
	cases := []struct {
		name    string
		r, f, m int
		want    string
	}{
		{"champions khi R,F,M đều cao", 5, 5, 5, contactmodels.SegmentChampions},
		{"champions ở biên 4-4-4", 4, 4, 4, contactmodels.SegmentChampions},
		{"loyal khi F=3 (không đủ champions)", 4, 3, 3, contactmodels.SegmentLoyalCustomers},
		{"loyal khi M=3", 5, 4, 3, contactmodels.SegmentLoyalCustomers},
		{"new khi R cao nhưng F thấp", 5, 2, 5, contactmodels.SegmentNewCustomers},
		{"new khi vừa donate lần đầu", 5, 2, 2, contactmodels.SegmentNewCustomers},
		{"at_risk khi R thấp nhưng F,M cao", 2, 4, 4, contactmodels.SegmentAtRisk},
		{"at_risk ở biên 2-3-3", 2, 3, 3, contactmodels.SegmentAtRisk},
		{"needs_attention khi R trung bình", 3, 2, 2, contactmodels.SegmentNeedsAttention},
		{"needs_attention khi R thấp và F thấp", 1, 1, 1, contactmodels.SegmentNeedsAttention},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeDonorSegment(tc.r, tc.f, tc.m))
		})
	}
}

func TestComputeRFM(t *testing.T) {
	now := int64(1_700_000_000_000)

	// Donor mới: 1 donation $50 cách đây 10 ngày
	score, segment := ComputeRFM(now-10*dayMilli, 1, 50, now)
	assert.Equal(t, "522", score)
	assert.Equal(t, contactmodels.SegmentNewCustomers, segment)

	// Donor trung thành: 12 donation, $1200, lần cuối 30 ngày trước
	score, segment = ComputeRFM(now-30*dayMilli, 12, 1200, now)
	assert.Equal(t, "555", score)
	assert.Equal(t, contactmodels.SegmentChampions, segment)

	// Donor đã lâu không quay lại: 5 donation, $600, lần cuối 400 ngày trước
	score, segment = ComputeRFM(now-400*dayMilli, 5, 600, now)
	assert.Equal(t, "244", score)
	assert.Equal(t, contactmodels.SegmentAtRisk, segment)

	// Contact chưa từng donate
	score, segment = ComputeRFM(0, 0, 0, now)
	assert.Equal(t, "111", score)
	assert.Equal(t, contactmodels.SegmentNeedsAttention, segment)
}

// Cùng input phải cho cùng output — chấm lại điểm không được đổi kết quả
// nếu dữ liệu giving không đổi.
func TestComputeRFM_Idempotent(t *testing.T) {
	now := int64(1_700_000_000_000)
	s1, seg1 := ComputeRFM(now-100*dayMilli, 7, 350, now)
	s2, seg2 := ComputeRFM(now-100*dayMilli, 7, 350, now)
	if s1 != s2 || seg1 != seg2 {
		t.Errorf("ComputeRFM không idempotent: (%s,%s) != (%s,%s)", s1, seg1, s2, seg2)
	}
}
