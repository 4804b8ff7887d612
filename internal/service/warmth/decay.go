// Package warmth 实现联系人温度引擎
// 衰减、分级、加成均为纯函数，编排逻辑在 service.go
package warmth

import (
	"math"
	"time"

	"warmline_server/pkg/errorx"
)

// 温度分数边界
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// DecayScore 根据最近互动时间计算衰减后的原始分数
// 线性衰减策略：分数在 2 倍期望频率时降到 0，
// 即 decayRate = 100 / (2 × desiredFrequencyDays)
//
// lastInteractionAt 为 nil 表示从未有互动记录，直接返回 0（失联）。
// desiredFrequencyDays 必须 >= 1，非法频率应在入口层拦截，
// 此处返回 CodeInvalidCadence 而不是带病计算
func DecayScore(lastInteractionAt *time.Time, desiredFrequencyDays int, now time.Time) (float64, error) {
	if desiredFrequencyDays < 1 {
		return 0, errorx.Newf(errorx.CodeInvalidCadence,
			"desired frequency days must be >= 1, got %d", desiredFrequencyDays)
	}
	if lastInteractionAt == nil {
		return MinScore, nil
	}

	// 距最近互动的天数，取小数
	daysSince := now.Sub(*lastInteractionAt).Hours() / 24
	if daysSince < 0 {
		// 未来时间戳按刚刚互动处理
		daysSince = 0
	}

	decayRate := MaxScore / (2 * float64(desiredFrequencyDays))
	return Clamp(MaxScore - daysSince*decayRate), nil
}

// Clamp 将分数限制在 [0,100] 区间
func Clamp(score float64) float64 {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Round 分数保留 1 位小数
// 落库和对外展示统一走这一个入口，避免比较时的浮点尾差
func Round(score float64) float64 {
	return math.Round(score*10) / 10
}
