package request

// ImportContactItem 批量导入的单个联系人
type ImportContactItem struct {
	Name                 string `json:"name" binding:"required,max=60"`
	Email                string `json:"email" binding:"omitempty,email"`
	Phone                string `json:"phone" binding:"omitempty,max=20"`
	Birthday             string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	DesiredFrequencyDays int    `json:"desired_frequency_days" binding:"omitempty,min=1,max=365"`
}

// ImportContactsRequest 批量导入联系人请求
// 导入的联系人没有互动历史，初始温度为 50/YELLOW（区别于手动创建的 100/GREEN）
// 使用位置:
//   - handler/contact_handler.go: ImportContacts
//   - internal/service/contact/service.go: ImportContacts
type ImportContactsRequest struct {
	UserId   string              `json:"user_id" binding:"required"`
	Contacts []ImportContactItem `json:"contacts" binding:"required,min=1,max=500,dive"`
}
