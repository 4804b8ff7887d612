// Package nudge 实现提醒生成与处理业务逻辑
// 生成路径：冷却联系人 + 生日窗口联系人 → 分类定级 → 去重 → 限额内落库
package nudge

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/config"
	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
	ws "warmline_server/internal/gateway/websocket"
	"warmline_server/internal/model"
	"warmline_server/pkg/constants"
	"warmline_server/pkg/enum/contact/warmth_status_enum"
	"warmline_server/pkg/enum/nudge/nudge_status_enum"
	"warmline_server/pkg/enum/nudge/nudge_type_enum"
	"warmline_server/pkg/enum/nudge/urgency_enum"
	"warmline_server/pkg/errorx"
	"warmline_server/pkg/util/random"
)

// nudgeService 提醒业务逻辑实现
type nudgeService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService

	birthdayWindowDays int // 生日提醒提前量（天）
	defaultMaxPerDay   int // 用户未配置时的每日上限
}

// NewNudgeService 构造函数
func NewNudgeService(repos *repository.Repositories, cache myredis.AsyncCacheService) *nudgeService {
	conf := config.GetConfig()
	return &nudgeService{
		repos:              repos,
		cache:              cache,
		birthdayWindowDays: conf.NudgeConfig.BirthdayWindowDays,
		defaultMaxPerDay:   conf.NudgeConfig.DefaultMaxNudgesPerDay,
	}
}

// candidate 提醒候选项：联系人 + 分类结果
type candidate struct {
	contact   model.Contact
	typ       int8
	urgency   int8
	daysUntil int // 距生日天数，仅生日类型有意义
	daysSince int // 距上次互动天数，从未互动为 -1
}

// GenerateForUser 为一个用户生成提醒
// 候选集 = 冷却联系人（YELLOW/RED/DEAD）∪ 生日窗口内联系人（不论温度状态），
// 已有未关闭提醒的联系人跳过，受每日限额约束
func (n *nudgeService) GenerateForUser(userId string) (*respond.GenerateNudgesRespond, error) {
	user, err := n.repos.User.FindByUuid(userId)
	if err != nil {
		zap.L().Error("Find user for nudge generation error", zap.String("user_id", userId), zap.Error(err))
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, errorx.ErrServerBusy
	}

	// 用户关闭提醒时整体跳过
	if user.PushNotifications == 0 {
		zap.L().Debug("User has push notifications disabled, skipping nudge generation",
			zap.String("user_id", userId))
		return &respond.GenerateNudgesRespond{Created: 0}, nil
	}

	now, startOfDay := n.userClock(user)

	maxPerDay := user.MaxNudgesPerDay
	if maxPerDay <= 0 {
		maxPerDay = n.defaultMaxPerDay
	}
	createdToday, err := n.repos.Nudge.CountCreatedSince(userId, startOfDay)
	if err != nil {
		zap.L().Error("Count daily nudges error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	budget := maxPerDay - int(createdToday)
	if budget <= 0 {
		zap.L().Debug("Daily nudge budget exhausted",
			zap.String("user_id", userId), zap.Int("max_per_day", maxPerDay))
		return &respond.GenerateNudgesRespond{Created: 0}, nil
	}

	candidates, err := n.collectCandidates(userId, now)
	if err != nil {
		return nil, err
	}

	created := 0
	for i := range candidates {
		if budget <= 0 {
			break
		}
		cand := &candidates[i]

		// 去重：该联系人已有未关闭提醒则跳过
		existing, err := n.repos.Nudge.FindOpenByContactId(cand.contact.Uuid)
		if err != nil {
			zap.L().Error("Find open nudge error",
				zap.String("contact_id", cand.contact.Uuid), zap.Error(err))
			continue
		}
		if existing != nil {
			continue
		}

		if err := n.createNudge(userId, cand, now); err != nil {
			if errorx.IsDuplicateNudge(err) {
				// 并发运行抢先创建了，无害跳过
				zap.L().Debug("Concurrent nudge creation detected, skipping",
					zap.String("contact_id", cand.contact.Uuid))
				continue
			}
			zap.L().Error("Create nudge error",
				zap.String("contact_id", cand.contact.Uuid), zap.Error(err))
			continue
		}
		created++
		budget--
	}

	if created > 0 {
		myredis.InvalidateUserCaches(n.cache, userId)
		ws.PushToUser(userId, ws.EventNudgesGenerated, map[string]int{"created": created})
	}

	zap.L().Info("Nudge generation finished",
		zap.String("user_id", userId),
		zap.Int("candidates", len(candidates)),
		zap.Int("created", created))

	return &respond.GenerateNudgesRespond{Created: created}, nil
}

// userClock 按用户时区返回当前时间与当日零点
// 每日限额和生日窗口都按用户本地日历判断
func (n *nudgeService) userClock(user *model.UserInfo) (time.Time, time.Time) {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return now, startOfDay
}

// collectCandidates 收集并分类本轮候选联系人
// 排序：紧急度降序 → 类型次序 → 优先级降序 → 温度分数升序
func (n *nudgeService) collectCandidates(userId string, now time.Time) ([]candidate, error) {
	coldStatuses := []int8{warmth_status_enum.YELLOW, warmth_status_enum.RED, warmth_status_enum.DEAD}
	cold, err := n.repos.Contact.FindColdByUserId(userId, coldStatuses, 0)
	if err != nil {
		zap.L().Error("Find cold contacts error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	withBirthday, err := n.repos.Contact.FindWithBirthdayByUserId(userId)
	if err != nil {
		zap.L().Error("Find birthday contacts error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	candidates := make([]candidate, 0, len(cold)+len(withBirthday))
	seen := make(map[string]bool, len(cold)+len(withBirthday))

	// 生日窗口内的联系人无条件进入候选集，即便温度是 GREEN
	for _, c := range withBirthday {
		days, ok := daysUntilBirthday(c.Birthday.Time, now)
		if !ok || days > n.birthdayWindowDays {
			continue
		}
		candidates = append(candidates, candidate{
			contact:   c,
			typ:       nudge_type_enum.BIRTHDAY,
			urgency:   urgency_enum.MAX,
			daysUntil: days,
			daysSince: daysSinceLast(&c, now),
		})
		seen[c.Uuid] = true
	}

	for _, c := range cold {
		if seen[c.Uuid] {
			continue
		}
		typ, urgency := classifyByStatus(c.WarmthStatus)
		candidates = append(candidates, candidate{
			contact:   c,
			typ:       typ,
			urgency:   urgency,
			daysSince: daysSinceLast(&c, now),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		if a.urgency != b.urgency {
			return a.urgency > b.urgency
		}
		if a.typ != b.typ {
			return typeRank(a.typ) < typeRank(b.typ)
		}
		if a.contact.Priority != b.contact.Priority {
			return a.contact.Priority > b.contact.Priority
		}
		return a.contact.WarmthScore < b.contact.WarmthScore
	})
	return candidates, nil
}

// typeRank 同紧急度内的类型次序，与分类时的先到先得次序一致：
// 生日在前，再失联召回，再温度衰减
func typeRank(typ int8) int {
	switch typ {
	case nudge_type_enum.BIRTHDAY:
		return 0
	case nudge_type_enum.RE_ENGAGE:
		return 1
	case nudge_type_enum.WARMTH_DECAY:
		return 2
	default:
		return 3
	}
}

// classifyByStatus 冷却联系人按温度状态定型定级
func classifyByStatus(status int8) (typ int8, urgency int8) {
	switch status {
	case warmth_status_enum.DEAD:
		return nudge_type_enum.RE_ENGAGE, urgency_enum.MAX
	case warmth_status_enum.RED:
		return nudge_type_enum.WARMTH_DECAY, urgency_enum.MID
	default:
		return nudge_type_enum.WARMTH_DECAY, urgency_enum.LOW
	}
}

// daysSinceLast 计算距上次互动的整天数，从未互动返回 -1
func daysSinceLast(c *model.Contact, now time.Time) int {
	if !c.LastInteractionAt.Valid {
		return -1
	}
	days := int(now.Sub(c.LastInteractionAt.Time).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// daysUntilBirthday 计算距下一次生日的整天数
// 只取生日的月/日，按 now 所在时区的日历判断；
// 2 月 29 日在平年会被规范化成 3 月 1 日，可接受
func daysUntilBirthday(birthday time.Time, now time.Time) (int, bool) {
	if birthday.IsZero() {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, now.Location())
	}
	return int(next.Sub(today).Hours() / 24), true
}

// createNudge 落库一条新提醒
func (n *nudgeService) createNudge(userId string, cand *candidate, now time.Time) error {
	text := buildCopy(cand)
	nudge := &model.Nudge{
		Uuid:            "N" + random.GetNowAndLenRandomString(13),
		UserId:          userId,
		ContactId:       cand.contact.Uuid,
		Type:            cand.typ,
		Status:          nudge_status_enum.PENDING,
		Urgency:         cand.urgency,
		Title:           text.Title,
		Body:            text.Body,
		SuggestedAction: text.SuggestedAction,
		ScheduledFor:    now,
	}
	return n.repos.Nudge.Create(nudge)
}

// ==================== 查询与处理 ====================

// GetPendingNudges 获取用户的未关闭提醒列表
// 缓存优先；推迟时限已过的提醒在列表中重新显示为待处理
func (n *nudgeService) GetPendingNudges(userId string) ([]respond.PendingNudgeRespond, error) {
	ctx := context.Background()
	cacheKey := myredis.PendingNudgeListKey(userId)
	if cached, err := n.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var list []respond.PendingNudgeRespond
		if err := json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	nudges, err := n.repos.Nudge.FindOpenByUserId(userId)
	if err != nil {
		zap.L().Error("Find open nudges error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	now := time.Now()
	list := make([]respond.PendingNudgeRespond, 0, len(nudges))
	for i := range nudges {
		nd := &nudges[i]
		contact, err := n.repos.Contact.FindByUuid(nd.ContactId)
		if err != nil {
			zap.L().Error("Find contact for nudge error",
				zap.String("nudge_id", nd.Uuid),
				zap.String("contact_id", nd.ContactId), zap.Error(err))
			continue
		}

		status := nd.Status
		snoozedUntil := ""
		if nd.SnoozedUntil.Valid {
			if nd.SnoozedUntil.Time.Before(now) {
				// 推迟到期，重新浮出为待处理
				status = nudge_status_enum.PENDING
			} else {
				snoozedUntil = nd.SnoozedUntil.Time.Format(time.RFC3339)
			}
		}

		list = append(list, respond.PendingNudgeRespond{
			NudgeId:         nd.Uuid,
			ContactId:       contact.Uuid,
			ContactName:     contact.Name,
			Type:            nd.Type,
			Status:          status,
			Urgency:         nd.Urgency,
			Title:           nd.Title,
			Body:            nd.Body,
			SuggestedAction: nd.SuggestedAction,
			ScheduledFor:    nd.ScheduledFor.Format(time.RFC3339),
			SnoozedUntil:    snoozedUntil,
			WarmthScore:     contact.WarmthScore,
			WarmthStatus:    contact.WarmthStatus,
		})
	}

	// 异步写回缓存
	if data, err := json.Marshal(list); err == nil {
		n.cache.SubmitTask(func() {
			_ = n.cache.Set(context.Background(), cacheKey, string(data),
				time.Minute*constants.REDIS_TIMEOUT)
		})
	}
	return list, nil
}

// SnoozeNudge 推迟提醒
// 推迟后提醒仍处于"未关闭"状态，不会被重复生成
func (n *nudgeService) SnoozeNudge(req request.SnoozeNudgeRequest) error {
	nudge, err := n.ownedOpenNudge(req.UserId, req.NudgeId)
	if err != nil {
		return err
	}
	until, err := time.Parse(time.RFC3339, req.SnoozedUntil)
	if err != nil {
		return errorx.New(errorx.CodeInvalidParam, "推迟时间格式错误")
	}
	if !until.After(time.Now()) {
		return errorx.New(errorx.CodeInvalidParam, "推迟时间必须在将来")
	}
	if err := n.repos.Nudge.UpdateStatus(nudge.Uuid, nudge_status_enum.SNOOZED, &until); err != nil {
		zap.L().Error("Snooze nudge error", zap.String("nudge_id", nudge.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}
	myredis.InvalidateUserCaches(n.cache, req.UserId)
	return nil
}

// DismissNudge 忽略提醒，关闭后该联系人可再次生成新提醒
func (n *nudgeService) DismissNudge(req request.NudgeActionRequest) error {
	return n.closeNudge(req, nudge_status_enum.DISMISSED)
}

// CompleteNudge 完成提醒
func (n *nudgeService) CompleteNudge(req request.NudgeActionRequest) error {
	return n.closeNudge(req, nudge_status_enum.COMPLETED)
}

// closeNudge 关闭提醒的公共路径
func (n *nudgeService) closeNudge(req request.NudgeActionRequest, status int8) error {
	nudge, err := n.ownedOpenNudge(req.UserId, req.NudgeId)
	if err != nil {
		return err
	}
	if err := n.repos.Nudge.UpdateStatus(nudge.Uuid, status, nil); err != nil {
		zap.L().Error("Close nudge error", zap.String("nudge_id", nudge.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}
	myredis.InvalidateUserCaches(n.cache, req.UserId)
	return nil
}

// ownedOpenNudge 校验提醒存在、归属当前用户且未关闭
func (n *nudgeService) ownedOpenNudge(userId, nudgeId string) (*model.Nudge, error) {
	nudge, err := n.repos.Nudge.FindByUuid(nudgeId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "提醒不存在")
		}
		zap.L().Error("Find nudge error", zap.String("nudge_id", nudgeId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if nudge.UserId != userId {
		return nil, errorx.New(errorx.CodeUnauthorized, "无权操作该提醒")
	}
	if !nudge.IsOpen() {
		return nil, errorx.New(errorx.CodeInvalidParam, "提醒已关闭")
	}
	return nudge, nil
}
