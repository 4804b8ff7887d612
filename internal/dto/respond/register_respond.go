package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - internal/service/user/service.go: Register
type RegisterRespond struct {
	Uuid         string `json:"uuid"`
	Nickname     string `json:"nickname"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
