package repository

import (
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"warmline_server/internal/model"
	"warmline_server/pkg/enum/nudge/nudge_status_enum"
	"warmline_server/pkg/errorx"
)

type nudgeRepository struct {
	db *gorm.DB
}

// NewNudgeRepository 创建提醒 Repository
func NewNudgeRepository(db *gorm.DB) NudgeRepository {
	return &nudgeRepository{db: db}
}

// isDuplicateKeyError 判断是否为唯一索引冲突
// gorm 开启 TranslateError 后返回 gorm.ErrDuplicatedKey，
// 兼容未翻译时的 MySQL 1062 错误码
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Create 创建提醒
// 命中 (contact_id, open_flag) 唯一索引冲突时返回 CodeDuplicateNudge：
// 说明并发运行已为该联系人生成了未关闭提醒，调用方按空操作处理
func (r *nudgeRepository) Create(nudge *model.Nudge) error {
	if err := r.db.Create(nudge).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errorx.Wrapf(err, errorx.CodeDuplicateNudge,
				"联系人 %s 已存在未关闭提醒", nudge.ContactId)
		}
		return wrapDBError(err, "创建提醒")
	}
	return nil
}

// FindByUuid 根据 UUID 查找提醒
func (r *nudgeRepository) FindByUuid(uuid string) (*model.Nudge, error) {
	var nudge model.Nudge
	if err := r.db.Where("uuid = ?", uuid).First(&nudge).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询提醒 uuid=%s", uuid)
	}
	return &nudge, nil
}

// FindOpenByContactId 查找联系人的未关闭提醒
// 不存在时返回 (nil, nil)，调用方无需区分 NotFound
func (r *nudgeRepository) FindOpenByContactId(contactId string) (*model.Nudge, error) {
	var nudge model.Nudge
	err := r.db.Where("contact_id = ? AND open_flag = ?", contactId, 1).First(&nudge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDBErrorf(err, "查询未关闭提醒 contact_id=%s", contactId)
	}
	return &nudge, nil
}

// FindOpenByUserId 查找用户的全部未关闭提醒，按计划时间升序
func (r *nudgeRepository) FindOpenByUserId(userId string) ([]model.Nudge, error) {
	var nudges []model.Nudge
	if err := r.db.Where("user_id = ? AND open_flag = ?", userId, 1).
		Order("scheduled_for ASC").Find(&nudges).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询未关闭提醒列表 user_id=%s", userId)
	}
	return nudges, nil
}

// CountOpenByUserId 统计用户未关闭提醒数量
func (r *nudgeRepository) CountOpenByUserId(userId string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Nudge{}).
		Where("user_id = ? AND open_flag = ?", userId, 1).
		Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计未关闭提醒 user_id=%s", userId)
	}
	return count, nil
}

// CountCreatedSince 统计用户在给定时间之后生成的提醒数量
// 提醒生成服务用它计算当日剩余限额
func (r *nudgeRepository) CountCreatedSince(userId string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Nudge{}).
		Where("user_id = ? AND created_at >= ?", userId, since).
		Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计当日提醒 user_id=%s", userId)
	}
	return count, nil
}

// UpdateStatus 更新提醒状态
// open_flag 随状态同步：关闭状态置 NULL，未关闭状态置 1（见 model.Nudge.BeforeSave 的约定）
// 这里走 map 更新不经过 Hook，需显式同步标志列
func (r *nudgeRepository) UpdateStatus(uuid string, status int8, snoozedUntil *time.Time) error {
	updates := map[string]interface{}{
		"status":        status,
		"snoozed_until": snoozedUntil,
	}
	if nudge_status_enum.IsOpen(status) {
		updates["open_flag"] = 1
	} else {
		updates["open_flag"] = nil
	}
	if err := r.db.Model(&model.Nudge{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新提醒状态 uuid=%s", uuid)
	}
	return nil
}
