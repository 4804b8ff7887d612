package warmth

import (
	"testing"

	"warmline_server/pkg/enum/contact/warmth_status_enum"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  int8
	}{
		{100, warmth_status_enum.GREEN},
		{60, warmth_status_enum.GREEN}, // 边界属于上档
		{59.9, warmth_status_enum.YELLOW},
		{30, warmth_status_enum.YELLOW},
		{29.9, warmth_status_enum.RED},
		{10, warmth_status_enum.RED},
		{9.9, warmth_status_enum.DEAD},
		{0, warmth_status_enum.DEAD},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s",
				tt.score, warmth_status_enum.Name(got), warmth_status_enum.Name(tt.want))
		}
	}
}
