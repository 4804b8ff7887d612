package warmth

import (
	"warmline_server/pkg/enum/contact/warmth_status_enum"
)

// 分级边界，左闭右开
// 必须与衰减函数的输出范围一致：恰好 60 分是 GREEN 而不是 YELLOW
const (
	greenThreshold  = 60.0
	yellowThreshold = 30.0
	redThreshold    = 10.0
)

// Classify 将温度分数映射到唯一的状态档位
// 从高到低判断，任意分数都有确定的归属
func Classify(score float64) int8 {
	switch {
	case score >= greenThreshold:
		return warmth_status_enum.GREEN
	case score >= yellowThreshold:
		return warmth_status_enum.YELLOW
	case score >= redThreshold:
		return warmth_status_enum.RED
	default:
		return warmth_status_enum.DEAD
	}
}
