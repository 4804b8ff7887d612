package request

// SnoozeNudgeRequest 推迟提醒请求
// 使用位置:
//   - handler/nudge_handler.go: SnoozeNudge
type SnoozeNudgeRequest struct {
	UserId       string `json:"user_id" binding:"required"`
	NudgeId      string `json:"nudge_id" binding:"required"`
	SnoozedUntil string `json:"snoozed_until" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
