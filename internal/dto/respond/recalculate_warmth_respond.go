package respond

// RecalculateWarmthRespond 温度重算响应
// 使用位置:
//   - internal/service/warmth/service.go: RecalculateAll
type RecalculateWarmthRespond struct {
	Updated int `json:"updated"` // 实际落库的联系人数
	Total   int `json:"total"`   // 参与重算的联系人总数
}
