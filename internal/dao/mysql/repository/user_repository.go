package repository

import (
	"time"

	"gorm.io/gorm"

	"warmline_server/internal/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 根据 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(email string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 email=%s", email)
	}
	return &user, nil
}

// FindAllActive 查找所有未禁用的用户
// 计划任务按此结果逐用户派发重算/提醒生成任务
func (r *userRepository) FindAllActive() ([]model.UserInfo, error) {
	var users []model.UserInfo
	if err := r.db.Where("status = ?", 0).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "查询有效用户列表")
	}
	return users, nil
}

// Create 创建新用户
func (r *userRepository) Create(user *model.UserInfo) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// UpdateSettings 更新用户提醒偏好
func (r *userRepository) UpdateSettings(uuid string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := r.db.Model(&model.UserInfo{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新用户偏好 uuid=%s", uuid)
	}
	return nil
}

// UpdateLastLoginAt 记录最近登录时间
func (r *userRepository) UpdateLastLoginAt(uuid string, at time.Time) error {
	if err := r.db.Model(&model.UserInfo{}).Where("uuid = ?", uuid).Update("last_login_at", at).Error; err != nil {
		return wrapDBErrorf(err, "更新登录时间 uuid=%s", uuid)
	}
	return nil
}
