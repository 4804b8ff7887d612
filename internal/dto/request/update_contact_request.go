package request

// UpdateContactRequest 更新联系人请求
// 温度分数/状态不在可更新字段内，只能由温度引擎推导
// 使用位置:
//   - handler/contact_handler.go: UpdateContact
//   - internal/service/contact/service.go: UpdateContact
type UpdateContactRequest struct {
	UserId               string `json:"user_id" binding:"required"`
	ContactId            string `json:"contact_id" binding:"required"`
	Name                 string `json:"name" binding:"omitempty,max=60"`
	Email                string `json:"email" binding:"omitempty,email"`
	Phone                string `json:"phone" binding:"omitempty,max=20"`
	Category             *int8  `json:"category" binding:"omitempty,min=0,max=4"`
	Priority             *int8  `json:"priority" binding:"omitempty,min=1,max=10"`
	DesiredFrequencyDays int    `json:"desired_frequency_days" binding:"omitempty,min=1,max=365"`
	Birthday             string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Notes                string `json:"notes" binding:"omitempty,max=500"`
}
