package request

// RecalculateWarmthRequest 手动触发单用户温度重算请求
// 使用位置:
//   - handler/warmth_handler.go: Recalculate
type RecalculateWarmthRequest struct {
	UserId string `json:"user_id" binding:"required"`
}
