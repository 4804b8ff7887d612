package respond

// GenerateNudgesRespond 提醒生成响应
// 使用位置:
//   - internal/service/nudge/service.go: GenerateForUser
type GenerateNudgesRespond struct {
	Created int `json:"created"` // 新建提醒条数
}
