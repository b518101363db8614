// Package models - Test tiến độ campaign.
package models

import "testing"

func TestProgressPercentage(t *testing.T) {
	cases := []struct {
		name        string
		raised, goal float64
		want        float64
	}{
		{"chưa gây được gì", 0, 1000, 0},
		{"nửa chừng", 500, 1000, 50},
		{"làm tròn 1 chữ số thập phân", 333, 1000, 33.3},
		{"làm tròn lên", 666.6, 1000, 66.7},
		{"đạt mục tiêu", 1000, 1000, 100},
		{"vượt mục tiêu vẫn cap ở 100", 1500, 1000, 100},
		{"goalAmount = 0 → 0, không chia cho 0", 500, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressPercentage(tc.raised, tc.goal)
			if got != tc.want {
				t.Errorf("ProgressPercentage(%.1f, %.1f) = %.1f, muốn %.1f", tc.raised, tc.goal, got, tc.want)
			}
		})
	}
}

func TestCampaignProgress(t *testing.T) {
	c := Campaign{GoalAmount: 2000, TotalRaised: 150}
	if got := c.Progress(); got != 7.5 {
		t.Errorf("Progress() = %.1f, muốn 7.5", got)
	}
}
