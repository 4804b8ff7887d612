// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/infrastructure/mq"
	"warmline_server/internal/service/auth"
	"warmline_server/internal/service/contact"
	"warmline_server/internal/service/interaction"
	"warmline_server/internal/service/job"
	"warmline_server/internal/service/nudge"
	"warmline_server/internal/service/user"
	"warmline_server/internal/service/warmth"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User        UserService        // 用户 Service
	Contact     ContactService     // 联系人 Service
	Interaction InteractionService // 互动记录 Service
	Warmth      WarmthService      // 温度重算 Service
	Nudge       NudgeService       // 提醒 Service
	Job         JobService         // 计划任务 Service
	Auth        AuthService        // 认证 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合与缓存服务实例
//  2. 创建各个 Service 实例，注入依赖
//  3. 把任务执行器注册到 MQ 层（依赖倒置：MQ 不感知 Service 实现）
//
// repos: Repository 层聚合实例
// cache: 缓存服务实例
// 返回: Services 聚合指针
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService) *Services {
	userSvc := user.NewUserService(repos, cache)
	contactSvc := contact.NewContactService(repos, cache)
	interactionSvc := interaction.NewInteractionService(repos, cache)
	warmthSvc := warmth.NewWarmthService(repos, cache)
	nudgeSvc := nudge.NewNudgeService(repos, cache)
	jobSvc := job.NewJobService(repos, cache, warmthSvc, nudgeSvc)
	authSvc := auth.NewAuthService(cache)

	// 任务消费端通过执行器回调 Service 层
	mq.SetTaskExecutor(jobSvc)

	return &Services{
		User:        userSvc,
		Contact:     contactSvc,
		Interaction: interactionSvc,
		Warmth:      warmthSvc,
		Nudge:       nudgeSvc,
		Job:         jobSvc,
		Auth:        authSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Nudge.GetPendingNudges() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 与 Redis 初始化之后
func InitServices(repos *repository.Repositories, cache myredis.AsyncCacheService) {
	Svc = NewServices(repos, cache)
}
