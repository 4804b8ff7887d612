package request

// GetContactInfoRequest 查询联系人详情请求（query 参数）
// 使用位置:
//   - handler/contact_handler.go: GetContactInfo
type GetContactInfoRequest struct {
	ContactId string `form:"contactId" binding:"required"`
}
