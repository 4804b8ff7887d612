package respond

// PendingNudgeRespond 待处理提醒列表项
// 使用位置:
//   - internal/service/nudge/service.go: GetPendingNudges
type PendingNudgeRespond struct {
	NudgeId         string  `json:"nudge_id"`
	ContactId       string  `json:"contact_id"`
	ContactName     string  `json:"contact_name"`
	Type            int8    `json:"type"`
	Status          int8    `json:"status"`
	Urgency         int8    `json:"urgency"`
	Title           string  `json:"title"`
	Body            string  `json:"body"`
	SuggestedAction string  `json:"suggested_action"`
	ScheduledFor    string  `json:"scheduled_for"`
	SnoozedUntil    string  `json:"snoozed_until,omitempty"`
	WarmthScore     float64 `json:"warmth_score"`
	WarmthStatus    int8    `json:"warmth_status"`
}
