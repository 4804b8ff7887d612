package respond

// LogInteractionRespond 记录互动响应
// 返回加成后的最新温度，前端无需再拉一次联系人
// 使用位置:
//   - internal/service/interaction/service.go: LogInteraction
type LogInteractionRespond struct {
	InteractionId string  `json:"interaction_id"`
	WarmthScore   float64 `json:"warmth_score"`
	WarmthStatus  int8    `json:"warmth_status"`
}
