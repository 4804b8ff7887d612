package request

// OwnListRequest 按用户查询列表的通用请求（query 参数）
// 使用位置:
//   - handler/contact_handler.go: GetContactList
//   - handler/nudge_handler.go: GetPendingNudges
//   - handler/dashboard_handler.go: GetStats
type OwnListRequest struct {
	UserId string `form:"userId" binding:"required"`
}
