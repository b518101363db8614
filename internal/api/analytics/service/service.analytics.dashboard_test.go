package analyticssvc

import "testing"

func TestAverageGiftSize(t *testing.T) {
	if got := AverageGiftSize(0, 0); got != 0 {
		t.Errorf("count=0 phải cho 0, không chia cho 0; được %.2f", got)
	}
	if got := AverageGiftSize(300, 4); got != 75 {
		t.Errorf("AverageGiftSize(300, 4) = %.2f, muốn 75", got)
	}
	if got := AverageGiftSize(150, 4); got != 37.5 {
		t.Errorf("AverageGiftSize(150, 4) = %.2f, muốn 37.5", got)
	}
}
