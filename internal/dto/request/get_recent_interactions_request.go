package request

// GetRecentInteractionsRequest 查询最近互动请求（query 参数）
// 使用位置:
//   - handler/interaction_handler.go: GetRecentInteractions
type GetRecentInteractionsRequest struct {
	ContactId  string `form:"contactId" binding:"required"`
	WindowDays int    `form:"windowDays" binding:"omitempty,min=1,max=90"`
}
