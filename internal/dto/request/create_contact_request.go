package request

// CreateContactRequest 创建联系人请求
// 使用位置:
//   - handler/contact_handler.go: CreateContact
//   - internal/service/contact/service.go: CreateContact
type CreateContactRequest struct {
	UserId               string `json:"user_id" binding:"required"`
	Name                 string `json:"name" binding:"required,max=60"`
	Email                string `json:"email" binding:"omitempty,email"`
	Phone                string `json:"phone" binding:"omitempty,max=20"`
	Category             int8   `json:"category" binding:"omitempty,min=0,max=4"`
	Priority             int8   `json:"priority" binding:"omitempty,min=1,max=10"`
	DesiredFrequencyDays int    `json:"desired_frequency_days" binding:"omitempty,min=1,max=365"`
	Birthday             string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Notes                string `json:"notes" binding:"omitempty,max=500"`
}
