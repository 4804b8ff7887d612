// Package model 定义数据库实体模型
// 本文件定义联系人模型，温度分数与状态为核心字段
package model

import (
	"database/sql"

	"gorm.io/gorm"
)

// Contact 联系人模型
// 对应数据库 contact 表
//
// 不变量：warmth_status 永远是 warmth_score 经分级器推导的结果，
// 任何修改分数的写路径都必须同时重算状态（仅 service/warmth 负责推导）
type Contact struct {
	gorm.Model

	// Uuid 联系人唯一标识
	// 格式：C + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:联系人唯一id"`

	// UserId 所属用户的 Uuid
	UserId string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`

	// Name 联系人姓名
	Name string `gorm:"column:name;type:varchar(60);not null;comment:姓名"`

	// Email 邮箱（可选）
	Email string `gorm:"column:email;type:varchar(60);comment:邮箱"`

	// Phone 电话（可选）
	Phone string `gorm:"column:phone;type:varchar(20);comment:电话"`

	// Category 联系人分类
	// 0.家人，1.朋友，2.同事，3.人脉，4.其他
	Category int8 `gorm:"column:category;not null;default:1;comment:分类，0.家人，1.朋友，2.同事，3.人脉，4.其他"`

	// Priority 优先级 1-10，提醒排序时优先级高者先出
	Priority int8 `gorm:"column:priority;not null;default:5;comment:优先级，1-10"`

	// DesiredFrequencyDays 期望联系频率（天），>= 1
	// 衰减速率由该值决定：分数在 2 倍频率时降到 0
	DesiredFrequencyDays int `gorm:"column:desired_frequency_days;not null;default:14;comment:期望联系频率（天）"`

	// Birthday 生日（可选），仅取月日参与生日提醒判断
	Birthday sql.NullTime `gorm:"column:birthday;type:date;comment:生日"`

	// LastInteractionAt 最近一次互动时间，衰减计算的起点
	LastInteractionAt sql.NullTime `gorm:"column:last_interaction_at;type:datetime;comment:最近互动时间"`

	// LastOutboundAt 最近一次主动联系时间
	LastOutboundAt sql.NullTime `gorm:"column:last_outbound_at;type:datetime;comment:最近主动联系时间"`

	// LastInboundAt 最近一次对方联系时间
	LastInboundAt sql.NullTime `gorm:"column:last_inbound_at;type:datetime;comment:最近对方联系时间"`

	// WarmthScore 温度分数，范围 [0,100]，保留 1 位小数
	WarmthScore float64 `gorm:"column:warmth_score;not null;default:100;comment:温度分数"`

	// WarmthStatus 温度状态
	// 0.GREEN，1.YELLOW，2.RED，3.DEAD，由分数推导
	WarmthStatus int8 `gorm:"column:warmth_status;index;not null;comment:温度状态，0.GREEN，1.YELLOW，2.RED，3.DEAD"`

	// Notes 备注
	Notes string `gorm:"column:notes;type:varchar(500);comment:备注"`

	// IsArchived 归档标志
	// 0=正常, 1=已归档；归档后不再参与温度重算与提醒生成
	IsArchived int8 `gorm:"column:is_archived;index;not null;comment:是否归档，0.否，1.是"`
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contact"
}
