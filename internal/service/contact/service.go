// Package contact 实现联系人业务逻辑
// 联系人的温度分数/状态只能由温度引擎推导，本包的写路径不直接改动它们
// （创建/导入时的初始值除外）
package contact

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/request"
	"warmline_server/internal/dto/respond"
	"warmline_server/internal/model"
	"warmline_server/pkg/constants"
	"warmline_server/pkg/enum/contact/warmth_status_enum"
	"warmline_server/pkg/errorx"
	"warmline_server/pkg/util/random"
)

// contactService 联系人业务逻辑实现
type contactService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewContactService 构造函数
func NewContactService(repos *repository.Repositories, cache myredis.AsyncCacheService) *contactService {
	return &contactService{repos: repos, cache: cache}
}

// CreateContact 手动创建联系人
// 初始温度 100/GREEN："首次联系乐观"——刚添加的人默认是热的
func (s *contactService) CreateContact(req request.CreateContactRequest) (string, error) {
	contact := s.buildContact(req.UserId, req.Name, req.Email, req.Phone,
		req.Birthday, req.DesiredFrequencyDays)
	if req.Category != 0 {
		contact.Category = req.Category
	}
	if req.Priority != 0 {
		contact.Priority = req.Priority
	}
	contact.Notes = req.Notes
	contact.WarmthScore = 100
	contact.WarmthStatus = warmth_status_enum.GREEN

	if err := s.repos.Contact.Create(contact); err != nil {
		zap.L().Error("Create contact error", zap.String("user_id", req.UserId), zap.Error(err))
		return "", errorx.ErrServerBusy
	}
	myredis.InvalidateUserCaches(s.cache, req.UserId)
	return contact.Uuid, nil
}

// ImportContacts 批量导入联系人
// 导入的联系人没有互动历史，初始温度 50/YELLOW，
// 与手动创建的 100/GREEN 区分开——导入名单的关系状态是未知的
func (s *contactService) ImportContacts(req request.ImportContactsRequest) (int, error) {
	contacts := make([]model.Contact, 0, len(req.Contacts))
	for _, item := range req.Contacts {
		contact := s.buildContact(req.UserId, item.Name, item.Email, item.Phone,
			item.Birthday, item.DesiredFrequencyDays)
		contact.WarmthScore = 50
		contact.WarmthStatus = warmth_status_enum.YELLOW
		contacts = append(contacts, *contact)
	}

	if err := s.repos.Contact.CreateBatch(contacts); err != nil {
		zap.L().Error("Import contacts error",
			zap.String("user_id", req.UserId), zap.Int("count", len(contacts)), zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	myredis.InvalidateUserCaches(s.cache, req.UserId)
	zap.L().Info("Contacts imported",
		zap.String("user_id", req.UserId), zap.Int("count", len(contacts)))
	return len(contacts), nil
}

// buildContact 组装联系人公共字段，填充默认值
func (s *contactService) buildContact(userId, name, email, phone, birthday string, frequencyDays int) *model.Contact {
	contact := &model.Contact{
		Uuid:                 "C" + random.GetNowAndLenRandomString(13),
		UserId:               userId,
		Name:                 name,
		Email:                email,
		Phone:                phone,
		Priority:             5,
		DesiredFrequencyDays: constants.DEFAULT_FREQUENCY_DAYS,
	}
	if frequencyDays > 0 {
		contact.DesiredFrequencyDays = frequencyDays
	}
	if birthday != "" {
		if t, err := time.Parse("2006-01-02", birthday); err == nil {
			contact.Birthday = sql.NullTime{Time: t, Valid: true}
		}
	}
	return contact
}

// UpdateContact 更新联系人资料
// 只接受资料类字段；温度分数/状态由引擎推导，不在可更新范围
func (s *contactService) UpdateContact(req request.UpdateContactRequest) error {
	contact, err := s.ownedContact(req.UserId, req.ContactId)
	if err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DesiredFrequencyDays > 0 {
		updates["desired_frequency_days"] = req.DesiredFrequencyDays
	}
	if req.Birthday != "" {
		t, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return errorx.New(errorx.CodeInvalidParam, "生日格式错误")
		}
		updates["birthday"] = t
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.repos.Contact.UpdateFields(contact.Uuid, updates); err != nil {
		zap.L().Error("Update contact error", zap.String("contact_id", contact.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}
	myredis.InvalidateContactCache(s.cache, contact.Uuid)
	myredis.InvalidateUserCaches(s.cache, req.UserId)
	return nil
}

// ArchiveContact 归档联系人
// 联系人从不删除；归档后退出温度重算与提醒生成
func (s *contactService) ArchiveContact(req request.ArchiveContactRequest) error {
	if _, err := s.ownedContact(req.UserId, req.ContactId); err != nil {
		return err
	}
	if err := s.repos.Contact.Archive(req.UserId, req.ContactId); err != nil {
		zap.L().Error("Archive contact error", zap.String("contact_id", req.ContactId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	myredis.InvalidateContactCache(s.cache, req.ContactId)
	myredis.InvalidateUserCaches(s.cache, req.UserId)
	return nil
}

// GetContactList 获取用户的联系人列表（含已归档）
func (s *contactService) GetContactList(userId string) ([]respond.ContactListRespond, error) {
	contacts, err := s.repos.Contact.FindByUserId(userId)
	if err != nil {
		zap.L().Error("Find contact list error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.ContactListRespond, 0, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		item := respond.ContactListRespond{
			ContactId:            c.Uuid,
			Name:                 c.Name,
			Category:             c.Category,
			Priority:             c.Priority,
			DesiredFrequencyDays: c.DesiredFrequencyDays,
			WarmthScore:          c.WarmthScore,
			WarmthStatus:         c.WarmthStatus,
			IsArchived:           c.IsArchived,
		}
		if c.LastInteractionAt.Valid {
			item.LastInteractionAt = c.LastInteractionAt.Time.Format(time.RFC3339)
		}
		if c.Birthday.Valid {
			item.Birthday = c.Birthday.Time.Format("2006-01-02")
		}
		list = append(list, item)
	}
	return list, nil
}

// GetContactInfo 获取联系人详情，缓存优先
func (s *contactService) GetContactInfo(contactId string) (*respond.GetContactInfoRespond, error) {
	ctx := context.Background()
	cacheKey := myredis.ContactInfoKey(contactId)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rsp respond.GetContactInfoRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return &rsp, nil
		}
	}

	contact, err := s.repos.Contact.FindByUuid(contactId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
		}
		zap.L().Error("Find contact error", zap.String("contact_id", contactId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.GetContactInfoRespond{
		ContactId:            contact.Uuid,
		UserId:               contact.UserId,
		Name:                 contact.Name,
		Email:                contact.Email,
		Phone:                contact.Phone,
		Category:             contact.Category,
		Priority:             contact.Priority,
		DesiredFrequencyDays: contact.DesiredFrequencyDays,
		WarmthScore:          contact.WarmthScore,
		WarmthStatus:         contact.WarmthStatus,
		Notes:                contact.Notes,
		IsArchived:           contact.IsArchived,
		CreatedAt:            contact.CreatedAt.Format(time.RFC3339),
	}
	if contact.Birthday.Valid {
		rsp.Birthday = contact.Birthday.Time.Format("2006-01-02")
	}
	if contact.LastInteractionAt.Valid {
		rsp.LastInteractionAt = contact.LastInteractionAt.Time.Format(time.RFC3339)
	}
	if contact.LastOutboundAt.Valid {
		rsp.LastOutboundAt = contact.LastOutboundAt.Time.Format(time.RFC3339)
	}
	if contact.LastInboundAt.Valid {
		rsp.LastInboundAt = contact.LastInboundAt.Time.Format(time.RFC3339)
	}

	// 异步写回缓存
	if data, err := json.Marshal(rsp); err == nil {
		s.cache.SubmitTask(func() {
			_ = s.cache.Set(context.Background(), cacheKey, string(data),
				time.Minute*constants.REDIS_TIMEOUT)
		})
	}
	return rsp, nil
}

// GetDashboardStats 获取用户仪表盘统计，缓存优先
func (s *contactService) GetDashboardStats(userId string) (*respond.DashboardStatsRespond, error) {
	ctx := context.Background()
	cacheKey := myredis.DashboardStatsKey(userId)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rsp respond.DashboardStatsRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return &rsp, nil
		}
	}

	counts, err := s.repos.Contact.CountByStatus(userId)
	if err != nil {
		zap.L().Error("Count contacts by status error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	avg, err := s.repos.Contact.AverageScore(userId)
	if err != nil {
		zap.L().Error("Average warmth score error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	pending, err := s.repos.Nudge.CountOpenByUserId(userId)
	if err != nil {
		zap.L().Error("Count open nudges error", zap.String("user_id", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	total := 0
	for _, c := range counts {
		total += int(c)
	}
	rsp := &respond.DashboardStatsRespond{
		TotalContacts: total,
		GreenCount:    int(counts[warmth_status_enum.GREEN]),
		YellowCount:   int(counts[warmth_status_enum.YELLOW]),
		RedCount:      int(counts[warmth_status_enum.RED]),
		DeadCount:     int(counts[warmth_status_enum.DEAD]),
		AverageScore:  avg,
		PendingNudges: int(pending),
	}

	if data, err := json.Marshal(rsp); err == nil {
		s.cache.SubmitTask(func() {
			_ = s.cache.Set(context.Background(), cacheKey, string(data),
				time.Minute*constants.REDIS_TIMEOUT)
		})
	}
	return rsp, nil
}

// ownedContact 校验联系人存在且归属当前用户
func (s *contactService) ownedContact(userId, contactId string) (*model.Contact, error) {
	contact, err := s.repos.Contact.FindByUuid(contactId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
		}
		zap.L().Error("Find contact error", zap.String("contact_id", contactId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if contact.UserId != userId {
		return nil, errorx.New(errorx.CodeUnauthorized, "无权操作该联系人")
	}
	return contact, nil
}
