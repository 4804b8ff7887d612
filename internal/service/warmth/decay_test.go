package warmth

import (
	"math"
	"testing"
	"time"

	"warmline_server/pkg/errorx"
)

func daysAgo(now time.Time, days float64) *time.Time {
	ts := now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	return &ts
}

func TestDecayScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lastAt        *time.Time
		frequencyDays int
		want          float64
	}{
		{"刚互动满分", daysAgo(now, 0), 14, 100},
		{"一倍频率剩一半", daysAgo(now, 14), 14, 50},
		{"两倍频率归零", daysAgo(now, 28), 14, 0},
		{"超过两倍频率不为负", daysAgo(now, 90), 14, 0},
		{"高频期望衰减更快", daysAgo(now, 7), 7, 50},
		{"低频期望衰减更慢", daysAgo(now, 7), 28, 87.5},
		{"未来时间戳按刚互动处理", daysAgo(now, -3), 14, 100},
		{"从未互动直接归零", nil, 14, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecayScore(tt.lastAt, tt.frequencyDays, now)
			if err != nil {
				t.Fatalf("DecayScore() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DecayScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecayScoreInvalidCadence(t *testing.T) {
	now := time.Now()
	for _, freq := range []int{0, -5} {
		_, err := DecayScore(daysAgo(now, 1), freq, now)
		if err == nil {
			t.Fatalf("DecayScore(freq=%d) expected error, got nil", freq)
		}
		if errorx.GetCode(err) != errorx.CodeInvalidCadence {
			t.Errorf("DecayScore(freq=%d) code = %d, want %d",
				freq, errorx.GetCode(err), errorx.CodeInvalidCadence)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-10, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{130, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{55.56, 55.6},
		{55.12, 55.1},
		{87.5, 87.5},
		{99.96, 100},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
