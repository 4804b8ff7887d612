// Package nudge_status_enum 定义提醒状态枚举
// PENDING 与 SNOOZED 为"未关闭"状态，受每联系人至多一条未关闭提醒的约束
package nudge_status_enum

const (
	PENDING   int8 = 0 // 待处理
	SNOOZED   int8 = 1 // 已推迟，snoozed_until 过期后重新视为待处理
	DISMISSED int8 = 2 // 已忽略
	COMPLETED int8 = 3 // 已完成
)

// IsOpen 判断状态是否属于"未关闭"
func IsOpen(status int8) bool {
	return status == PENDING || status == SNOOZED
}
