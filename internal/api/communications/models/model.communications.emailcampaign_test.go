// Package models - Test tỷ lệ engagement của email campaign.
package models

import "testing"

func TestEngagementRate(t *testing.T) {
	cases := []struct {
		name       string
		num, denom int
		want       float64
	}{
		{"chưa gửi mail nào → 0, không chia cho 0", 10, 0, 0},
		{"một nửa", 50, 100, 50},
		{"làm tròn 1 chữ số thập phân", 1, 3, 33.3},
		{"làm tròn lên", 2, 3, 66.7},
		{"toàn bộ", 100, 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EngagementRate(tc.num, tc.denom)
			if got != tc.want {
				t.Errorf("EngagementRate(%d, %d) = %.1f, muốn %.1f", tc.num, tc.denom, got, tc.want)
			}
		})
	}
}

func TestEmailCampaignRates(t *testing.T) {
	e := EmailCampaign{
		SentCount:   200,
		OpenCount:   90,
		ClickCount:  25,
		BounceCount: 4,
	}
	if got := e.OpenRate(); got != 45 {
		t.Errorf("OpenRate = %.1f, muốn 45", got)
	}
	if got := e.ClickRate(); got != 12.5 {
		t.Errorf("ClickRate = %.1f, muốn 12.5", got)
	}
	if got := e.BounceRate(); got != 2 {
		t.Errorf("BounceRate = %.1f, muốn 2", got)
	}

	// Campaign chưa gửi: mọi rate bằng 0
	draft := EmailCampaign{Status: EmailCampaignStatusDraft, OpenCount: 3}
	if got := draft.OpenRate(); got != 0 {
		t.Errorf("OpenRate của campaign chưa gửi phải là 0, được %.1f", got)
	}
}
