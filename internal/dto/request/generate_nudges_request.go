package request

// GenerateNudgesRequest 手动触发单用户提醒生成请求
// 使用位置:
//   - handler/nudge_handler.go: GenerateNudges
type GenerateNudgesRequest struct {
	UserId string `json:"user_id" binding:"required"`
}
