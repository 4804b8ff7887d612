// Package urgency_enum 定义提醒紧急度分级
package urgency_enum

const (
	LOW int8 = 1 // 低：YELLOW 联系人
	MID int8 = 2 // 中：RED 联系人
	MAX int8 = 3 // 高：DEAD 联系人或临近生日
)
