package respond

// InteractionListRespond 最近互动列表项
// 使用位置:
//   - internal/service/interaction/service.go: GetRecentInteractions
type InteractionListRespond struct {
	InteractionId string   `json:"interaction_id"`
	Type          int8     `json:"type"`
	Direction     int8     `json:"direction"`
	OccurredAt    string   `json:"occurred_at"`
	Summary       string   `json:"summary,omitempty"`
	Topics        []string `json:"topics,omitempty"`
}
