package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/user/service.go: Login
type LoginRespond struct {
	Uuid              string `json:"uuid"`
	Nickname          string `json:"nickname"`
	Email             string `json:"email"`
	Timezone          string `json:"timezone"`
	MaxNudgesPerDay   int    `json:"max_nudges_per_day"`
	PushNotifications int8   `json:"push_notifications"`
	CreatedAt         string `json:"created_at"`
	IsAdmin           int8   `json:"is_admin"`
	Status            int8   `json:"status"`
	AccessToken       string `json:"access_token"`
	RefreshToken      string `json:"refresh_token"`
}
