package request

// ArchiveContactRequest 归档联系人请求
// 联系人从不删除，只归档；归档后退出温度重算与提醒生成
// 使用位置:
//   - handler/contact_handler.go: ArchiveContact
type ArchiveContactRequest struct {
	UserId    string `json:"user_id" binding:"required"`
	ContactId string `json:"contact_id" binding:"required"`
}
