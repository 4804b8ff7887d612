package request

// LogInteractionRequest 记录互动请求
// 记录成功后实时路径立即给联系人温度加成并刷新最近互动时间
// 使用位置:
//   - handler/interaction_handler.go: LogInteraction
//   - internal/service/interaction/service.go: LogInteraction
type LogInteractionRequest struct {
	UserId     string   `json:"user_id" binding:"required"`
	ContactId  string   `json:"contact_id" binding:"required"`
	Type       int8     `json:"type" binding:"min=0,max=8"`
	Direction  int8     `json:"direction" binding:"min=0,max=2"`
	OccurredAt string   `json:"occurred_at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Summary    string   `json:"summary" binding:"omitempty,max=500"`
	Topics     []string `json:"topics" binding:"omitempty,max=20"`
}
