package respond

// ContactListRespond 联系人列表项
// 使用位置:
//   - internal/service/contact/service.go: GetContactList
type ContactListRespond struct {
	ContactId            string  `json:"contact_id"`
	Name                 string  `json:"name"`
	Category             int8    `json:"category"`
	Priority             int8    `json:"priority"`
	DesiredFrequencyDays int     `json:"desired_frequency_days"`
	WarmthScore          float64 `json:"warmth_score"`
	WarmthStatus         int8    `json:"warmth_status"`
	LastInteractionAt    string  `json:"last_interaction_at,omitempty"`
	Birthday             string  `json:"birthday,omitempty"`
	IsArchived           int8    `json:"is_archived"`
}
