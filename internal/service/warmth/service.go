package warmth

import (
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/config"
	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/respond"
	ws "warmline_server/internal/gateway/websocket"
	"warmline_server/internal/model"
	"warmline_server/pkg/enum/contact/warmth_status_enum"
	"warmline_server/pkg/errorx"
)

// warmthService 温度重算业务逻辑实现
// 编排衰减、加成、分级纯函数，批量重算一个用户的全部未归档联系人
type warmthService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService

	boostWindowDays int     // 加成回溯窗口（天）
	scoreEpsilon    float64 // 分数写回阈值
}

// NewWarmthService 构造函数
func NewWarmthService(repos *repository.Repositories, cache myredis.AsyncCacheService) *warmthService {
	conf := config.GetConfig()
	return &warmthService{
		repos:           repos,
		cache:           cache,
		boostWindowDays: conf.WarmthConfig.BoostWindowDays,
		scoreEpsilon:    conf.WarmthConfig.ScoreEpsilon,
	}
}

// ComputeContact 计算单个联系人此刻的温度
// 衰减分 + 窗口内互动加成，夹取后保留 1 位小数，状态由分数推导
func (w *warmthService) ComputeContact(contact *model.Contact, interactions []model.Interaction, now time.Time) (float64, int8, error) {
	var lastAt *time.Time
	if contact.LastInteractionAt.Valid {
		t := contact.LastInteractionAt.Time
		lastAt = &t
	}

	decayScore, err := DecayScore(lastAt, contact.DesiredFrequencyDays, now)
	if err != nil {
		return 0, 0, err
	}

	// 从未互动的联系人没有加成来源，直接 0 分失联
	if lastAt == nil {
		return MinScore, warmth_status_enum.DEAD, nil
	}

	windowStart := now.AddDate(0, 0, -w.boostWindowDays)
	score := Round(Clamp(decayScore + BoostSum(interactions, windowStart)))
	return score, Classify(score), nil
}

// RecalculateAll 重算一个用户的全部未归档联系人温度
// 单个联系人失败只记录日志并跳过，不中断整批；
// 分数变化不超过阈值且状态不变时跳过落库，重复调用幂等
func (w *warmthService) RecalculateAll(userId string) (*respond.RecalculateWarmthRespond, error) {
	contacts, err := w.repos.Contact.FindActiveByUserId(userId)
	if err != nil {
		zap.L().Error("Find active contacts error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	now := time.Now()
	windowStart := now.AddDate(0, 0, -w.boostWindowDays)
	updated := 0

	for i := range contacts {
		contact := &contacts[i]

		interactions, err := w.repos.Interaction.FindByContactIdSince(contact.Uuid, windowStart)
		if err != nil {
			zap.L().Error("Find interactions for recalculation error",
				zap.String("contact_id", contact.Uuid), zap.Error(err))
			continue
		}

		newScore, newStatus, err := w.ComputeContact(contact, interactions, now)
		if err != nil {
			zap.L().Error("Compute warmth error",
				zap.String("contact_id", contact.Uuid),
				zap.Int("frequency_days", contact.DesiredFrequencyDays),
				zap.Error(err))
			continue
		}

		// 写回抑制：分数漂移在阈值内且状态不变，视为噪声
		delta := newScore - contact.WarmthScore
		if delta < 0 {
			delta = -delta
		}
		if delta <= w.scoreEpsilon && newStatus == contact.WarmthStatus {
			continue
		}

		if newStatus != contact.WarmthStatus {
			zap.L().Info("Contact warmth status transition",
				zap.String("contact_id", contact.Uuid),
				zap.String("from", warmth_status_enum.Name(contact.WarmthStatus)),
				zap.String("to", warmth_status_enum.Name(newStatus)),
				zap.Float64("score", newScore))
		}

		if err := w.repos.Contact.UpdateWarmth(contact.Uuid, newScore, newStatus); err != nil {
			zap.L().Error("Write back warmth error",
				zap.String("contact_id", contact.Uuid), zap.Error(err))
			continue
		}
		myredis.InvalidateContactCache(w.cache, contact.Uuid)
		updated++
	}

	if updated > 0 {
		myredis.InvalidateUserCaches(w.cache, userId)
		ws.PushToUser(userId, ws.EventWarmthStatusChanged, map[string]int{"updated": updated})
	}

	zap.L().Info("Warmth recalculation finished",
		zap.String("user_id", userId),
		zap.Int("total", len(contacts)),
		zap.Int("updated", updated))

	return &respond.RecalculateWarmthRespond{
		Updated: updated,
		Total:   len(contacts),
	}, nil
}
