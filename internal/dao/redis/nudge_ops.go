// Package redis 提供 Redis 缓存操作的封装
// 本文件包含提醒列表与仪表盘统计的缓存键约定及失效操作
package redis

import (
	"context"

	"go.uber.org/zap"
)

// ==================== 缓存键约定 ====================

// PendingNudgeListKey 用户待处理提醒列表缓存键
func PendingNudgeListKey(userId string) string {
	return "pending_nudge_list_" + userId
}

// DashboardStatsKey 用户仪表盘统计缓存键
func DashboardStatsKey(userId string) string {
	return "dashboard_stats_" + userId
}

// ContactInfoKey 联系人详情缓存键
func ContactInfoKey(contactId string) string {
	return "contact_info_" + contactId
}

// ==================== 异步失效 ====================

// InvalidateUserCaches 异步失效用户的提醒列表和仪表盘缓存
// 暖度重算、提醒生成/处理、互动记录写入后调用
// 写路径不等待 Redis，失效任务进入 Worker 队列
func InvalidateUserCaches(cache AsyncCacheService, userId string) {
	cache.SubmitTask(func() {
		ctx := context.Background()
		if err := cache.DeleteByPatterns(ctx, []string{
			PendingNudgeListKey(userId),
			DashboardStatsKey(userId),
		}); err != nil {
			zap.L().Error("Redis invalidate user caches failed",
				zap.String("user_id", userId), zap.Error(err))
		}
	})
}

// InvalidateContactCache 异步失效联系人详情缓存
// 联系人资料更新、暖度分数写回、归档后调用
func InvalidateContactCache(cache AsyncCacheService, contactId string) {
	cache.SubmitTask(func() {
		ctx := context.Background()
		if err := cache.Delete(ctx, ContactInfoKey(contactId)); err != nil {
			zap.L().Error("Redis invalidate contact cache failed",
				zap.String("contact_id", contactId), zap.Error(err))
		}
	})
}
