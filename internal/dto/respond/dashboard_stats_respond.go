package respond

// DashboardStatsRespond 仪表盘统计响应
// 使用位置:
//   - internal/service/contact/service.go: GetDashboardStats
type DashboardStatsRespond struct {
	TotalContacts int     `json:"total_contacts"`
	GreenCount    int     `json:"green_count"`
	YellowCount   int     `json:"yellow_count"`
	RedCount      int     `json:"red_count"`
	DeadCount     int     `json:"dead_count"`
	AverageScore  float64 `json:"average_score"`
	PendingNudges int     `json:"pending_nudges"`
}
