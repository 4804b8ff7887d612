package respond

// GetContactInfoRespond 联系人详情响应
// 使用位置:
//   - internal/service/contact/service.go: GetContactInfo
type GetContactInfoRespond struct {
	ContactId            string  `json:"contact_id"`
	UserId               string  `json:"user_id"`
	Name                 string  `json:"name"`
	Email                string  `json:"email,omitempty"`
	Phone                string  `json:"phone,omitempty"`
	Category             int8    `json:"category"`
	Priority             int8    `json:"priority"`
	DesiredFrequencyDays int     `json:"desired_frequency_days"`
	Birthday             string  `json:"birthday,omitempty"`
	WarmthScore          float64 `json:"warmth_score"`
	WarmthStatus         int8    `json:"warmth_status"`
	LastInteractionAt    string  `json:"last_interaction_at,omitempty"`
	LastOutboundAt       string  `json:"last_outbound_at,omitempty"`
	LastInboundAt        string  `json:"last_inbound_at,omitempty"`
	Notes                string  `json:"notes,omitempty"`
	IsArchived           int8    `json:"is_archived"`
	CreatedAt            string  `json:"created_at"`
}
