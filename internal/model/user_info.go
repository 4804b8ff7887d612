// Package model 定义数据库实体模型
// 本文件定义用户信息模型，包含用户基本资料、认证信息和提醒偏好
package model

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// UserInfo 用户信息模型
// 对应数据库 user_info 表
type UserInfo struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 用户唯一标识
	// 格式：U + 13位时间戳随机字符串，如 "U260901Ab3dE56789"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`

	// Nickname 用户昵称
	Nickname string `gorm:"column:nickname;type:varchar(30);not null;comment:昵称"`

	// Email 邮箱地址，用于登录验证
	Email string `gorm:"column:email;uniqueIndex;type:varchar(60);not null;comment:邮箱"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// Timezone IANA 时区名，如 "Asia/Shanghai"
	// 生日提醒按用户时区判断"今天"
	Timezone string `gorm:"column:timezone;type:varchar(40);default:UTC;comment:时区"`

	// MaxNudgesPerDay 每日提醒生成上限
	MaxNudgesPerDay int `gorm:"column:max_nudges_per_day;not null;default:5;comment:每日提醒上限"`

	// PushNotifications 是否接收提醒
	// 0=关闭, 1=开启；关闭时提醒生成服务跳过该用户
	PushNotifications int8 `gorm:"column:push_notifications;not null;default:1;comment:是否接收提醒，0.否，1.是"`

	// LastLoginAt 上次登录时间
	LastLoginAt sql.NullTime `gorm:"column:last_login_at;type:datetime;comment:上次登录时间"`

	// IsAdmin 管理员标志
	// 0=普通用户, 1=管理员
	IsAdmin int8 `gorm:"column:is_admin;not null;comment:是否是管理员，0.不是，1.是"`

	// Status 账号状态
	// 0=正常, 1=禁用
	Status int8 `gorm:"column:status;index;not null;comment:状态，0.正常，1.禁用"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 作用：将 RawPassword 明文密码加密后存入 Password 字段
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash) // 存储加密后的密码
		u.RawPassword = ""        // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确
// plaintext: 用户输入的明文密码
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
