package request

// NudgeActionRequest 忽略/完成提醒的通用请求
// 使用位置:
//   - handler/nudge_handler.go: DismissNudge, CompleteNudge
type NudgeActionRequest struct {
	UserId  string `json:"user_id" binding:"required"`
	NudgeId string `json:"nudge_id" binding:"required"`
}
