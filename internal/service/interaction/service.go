// Package interaction 实现互动记录业务逻辑
// 记录互动的同时走实时路径给联系人温度加成，不等待下一轮批量重算
package interaction

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
	"warmline_server/internal/model"
	"warmline_server/internal/service/warmth"
	"warmline_server/pkg/enum/interaction/direction_enum"
	"warmline_server/pkg/enum/interaction/interaction_type_enum"
	"warmline_server/pkg/errorx"
	"warmline_server/pkg/util/snowflake"
)

// interactionService 互动记录业务逻辑实现
type interactionService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewInteractionService 构造函数
func NewInteractionService(repos *repository.Repositories, cache myredis.AsyncCacheService) *interactionService {
	return &interactionService{repos: repos, cache: cache}
}

// LogInteraction 记录一次互动
// 实时路径：写入互动记录 → 当前分数直接加上该次互动的加成 →
// 重新分级 → 写回温度与最近互动时间戳。
// 批量重算随后运行时结果幂等，实时加成只是让前端立即看到变化
func (s *interactionService) LogInteraction(req request.LogInteractionRequest) (*respond.LogInteractionRespond, error) {
	if !interaction_type_enum.IsValid(req.Type) || !direction_enum.IsValid(req.Direction) {
		return nil, errorx.ErrInvalidParam
	}

	contact, err := s.repos.Contact.FindByUuid(req.ContactId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
		}
		zap.L().Error("Find contact error", zap.String("contact_id", req.ContactId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if contact.UserId != req.UserId {
		return nil, errorx.New(errorx.CodeUnauthorized, "无权操作该联系人")
	}
	if contact.IsArchived == 1 {
		return nil, errorx.New(errorx.CodeContactArchived, "联系人已归档")
	}

	occurredAt := time.Now()
	if req.OccurredAt != "" {
		t, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			return nil, errorx.New(errorx.CodeInvalidParam, "互动时间格式错误")
		}
		if t.After(time.Now()) {
			return nil, errorx.New(errorx.CodeInvalidParam, "互动时间不能在将来")
		}
		occurredAt = t
	}

	topics := ""
	if len(req.Topics) > 0 {
		if data, err := json.Marshal(req.Topics); err == nil {
			topics = string(data)
		}
	}

	record := &model.Interaction{
		Uuid:       "I" + snowflake.GenerateIDString(),
		ContactId:  contact.Uuid,
		UserId:     req.UserId,
		Type:       req.Type,
		Direction:  req.Direction,
		OccurredAt: occurredAt,
		Summary:    req.Summary,
		Topics:     topics,
	}

	// 互动记录与温度写回放在同一事务，避免出现"有记录没加成"的中间态
	var newScore float64
	var newStatus int8
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Interaction.Create(record); err != nil {
			return err
		}
		boost := warmth.BoostValue(req.Type, req.Direction)
		newScore = warmth.Round(warmth.Clamp(contact.WarmthScore + boost))
		newStatus = warmth.Classify(newScore)
		return tx.Contact.TouchInteraction(contact.Uuid, newScore, newStatus, req.Direction, occurredAt)
	})
	if err != nil {
		zap.L().Error("Log interaction transaction error",
			zap.String("contact_id", contact.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	myredis.InvalidateContactCache(s.cache, contact.Uuid)
	myredis.InvalidateUserCaches(s.cache, req.UserId)

	zap.L().Info("Interaction logged",
		zap.String("contact_id", contact.Uuid),
		zap.String("type", interaction_type_enum.Name(req.Type)),
		zap.Float64("new_score", newScore))

	return &respond.LogInteractionRespond{
		InteractionId: record.Uuid,
		WarmthScore:   newScore,
		WarmthStatus:  newStatus,
	}, nil
}

// GetRecentInteractions 查询联系人在回溯窗口内的互动列表
// windowDays 缺省取 30 天
func (s *interactionService) GetRecentInteractions(req request.GetRecentInteractionsRequest) ([]respond.InteractionListRespond, error) {
	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	interactions, err := s.repos.Interaction.FindByContactIdSince(req.ContactId, since)
	if err != nil {
		zap.L().Error("Find recent interactions error",
			zap.String("contact_id", req.ContactId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.InteractionListRespond, 0, len(interactions))
	for i := range interactions {
		it := &interactions[i]
		var topics []string
		if it.Topics != "" {
			_ = json.Unmarshal([]byte(it.Topics), &topics)
		}
		list = append(list, respond.InteractionListRespond{
			InteractionId: it.Uuid,
			Type:          it.Type,
			Direction:     it.Direction,
			OccurredAt:    it.OccurredAt.Format(time.RFC3339),
			Summary:       it.Summary,
			Topics:        topics,
		})
	}
	return list, nil
}
