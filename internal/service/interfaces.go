// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理注册、登录、Token 刷新和提醒偏好
type UserService interface {
	// Register 用户注册，成功时直接发放双 Token
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 刷新双 Token
	RefreshToken(req request.RefreshTokenRequest) (*respond.AuthTokenRespond, error)
	// UpdateSettings 更新提醒偏好
	UpdateSettings(req request.UpdateSettingsRequest) error
}

// ContactService 联系人业务接口
// 联系人增改查、归档与仪表盘统计
type ContactService interface {
	// CreateContact 创建联系人，返回新联系人 Uuid
	CreateContact(req request.CreateContactRequest) (string, error)
	// ImportContacts 批量导入联系人，返回导入条数
	ImportContacts(req request.ImportContactsRequest) (int, error)
	// UpdateContact 更新联系人资料
	UpdateContact(req request.UpdateContactRequest) error
	// ArchiveContact 归档联系人
	ArchiveContact(req request.ArchiveContactRequest) error
	// GetContactList 获取联系人列表（含已归档）
	GetContactList(userId string) ([]respond.ContactListRespond, error)
	// GetContactInfo 获取联系人详情
	GetContactInfo(contactId string) (*respond.GetContactInfoRespond, error)
	// GetDashboardStats 获取仪表盘统计
	GetDashboardStats(userId string) (*respond.DashboardStatsRespond, error)
}

// InteractionService 互动记录业务接口
type InteractionService interface {
	// LogInteraction 记录互动并实时加成温度
	LogInteraction(req request.LogInteractionRequest) (*respond.LogInteractionRespond, error)
	// GetRecentInteractions 查询联系人最近互动
	GetRecentInteractions(req request.GetRecentInteractionsRequest) ([]respond.InteractionListRespond, error)
}

// WarmthService 温度重算业务接口
type WarmthService interface {
	// RecalculateAll 重算一个用户的全部未归档联系人温度
	RecalculateAll(userId string) (*respond.RecalculateWarmthRespond, error)
}

// NudgeService 提醒业务接口
type NudgeService interface {
	// GenerateForUser 为一个用户生成提醒
	GenerateForUser(userId string) (*respond.GenerateNudgesRespond, error)
	// GetPendingNudges 获取未关闭提醒列表
	GetPendingNudges(userId string) ([]respond.PendingNudgeRespond, error)
	// SnoozeNudge 推迟提醒
	SnoozeNudge(req request.SnoozeNudgeRequest) error
	// DismissNudge 忽略提醒
	DismissNudge(req request.NudgeActionRequest) error
	// CompleteNudge 完成提醒
	CompleteNudge(req request.NudgeActionRequest) error
}

// JobService 计划任务业务接口
// 触发端点调用；任务消费走 mq.TaskExecutor，不经过此接口
type JobService interface {
	// TriggerWarmthRecalculation 触发全量温度重算
	TriggerWarmthRecalculation() (*respond.CronTriggerRespond, error)
	// TriggerNudgeGeneration 触发全量提醒生成
	TriggerNudgeGeneration() (*respond.CronTriggerRespond, error)
}

// AuthService 认证业务接口
// JWT 中间件通过它校验 Refresh Token 的单点有效性
type AuthService interface {
	// ValidateTokenID 校验用户当前有效的 Token ID
	ValidateTokenID(userID, tokenID string) (bool, error)
}
