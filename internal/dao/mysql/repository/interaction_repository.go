package repository

import (
	"time"

	"gorm.io/gorm"

	"warmline_server/internal/model"
)

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository 创建互动记录 Repository
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Create 创建互动记录
func (r *interactionRepository) Create(interaction *model.Interaction) error {
	if err := r.db.Create(interaction).Error; err != nil {
		return wrapDBError(err, "创建互动记录")
	}
	return nil
}

// FindByContactIdSince 查找联系人在给定时间之后的互动
// 温度加成窗口的输入集：按发生时间降序
func (r *interactionRepository) FindByContactIdSince(contactId string, since time.Time) ([]model.Interaction, error) {
	var interactions []model.Interaction
	if err := r.db.Where("contact_id = ? AND occurred_at >= ?", contactId, since).
		Order("occurred_at DESC").Find(&interactions).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询互动窗口 contact_id=%s", contactId)
	}
	return interactions, nil
}

// FindRecentByContactId 查找联系人最近 limit 条互动
func (r *interactionRepository) FindRecentByContactId(contactId string, limit int) ([]model.Interaction, error) {
	var interactions []model.Interaction
	if err := r.db.Where("contact_id = ?", contactId).
		Order("occurred_at DESC").Limit(limit).Find(&interactions).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询最近互动 contact_id=%s", contactId)
	}
	return interactions, nil
}
