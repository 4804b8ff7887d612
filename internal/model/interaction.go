// Package model 定义数据库实体模型
// 本文件定义互动记录模型，一经创建不可修改
package model

import (
	"time"

	"gorm.io/gorm"
)

// Interaction 互动记录模型
// 对应数据库 interaction 表
// 互动记录只作为温度加成计算的只读输入，不会被更新或删除
type Interaction struct {
	gorm.Model

	// Uuid 互动唯一标识
	// 格式：I + 雪花 ID
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(24);comment:互动唯一id"`

	// ContactId 所属联系人的 Uuid
	ContactId string `gorm:"column:contact_id;index;type:char(20);not null;comment:联系人id"`

	// UserId 所属用户的 Uuid，冗余存储方便按用户查询
	UserId string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`

	// Type 互动类型
	// 0.消息，1.通话，2.视频，3.会面，4.语音留言，5.邮件，6.社交媒体，7.手动补录，8.当面
	Type int8 `gorm:"column:type;not null;comment:互动类型"`

	// Direction 互动方向
	// 0.主动，1.被动，2.双向
	Direction int8 `gorm:"column:direction;not null;comment:方向，0.主动，1.被动，2.双向"`

	// OccurredAt 互动发生时间，加成窗口按此字段判断
	OccurredAt time.Time `gorm:"column:occurred_at;index;type:datetime;not null;comment:发生时间"`

	// Summary 摘要（可选）
	Summary string `gorm:"column:summary;type:varchar(500);comment:摘要"`

	// Topics 话题标签，JSON 数组字符串（可选）
	Topics string `gorm:"column:topics;type:varchar(500);comment:话题标签"`
}

// TableName 指定表名
func (Interaction) TableName() string {
	return "interaction"
}
