package request

// UpdateSettingsRequest 更新用户提醒偏好请求
// 使用位置:
//   - handler/user_handler.go: UpdateSettings
//   - internal/service/user/service.go: UpdateSettings
type UpdateSettingsRequest struct {
	UserId            string `json:"user_id" binding:"required"`
	MaxNudgesPerDay   int    `json:"max_nudges_per_day" binding:"omitempty,min=1,max=50"`
	PushNotifications *int8  `json:"push_notifications" binding:"omitempty,oneof=0 1"`
	Timezone          string `json:"timezone" binding:"omitempty,iana_tz"`
}
