package respond

// AuthTokenRespond Token 刷新响应
// 使用位置:
//   - internal/service/user/service.go: RefreshToken
type AuthTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
