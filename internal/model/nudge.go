// Package model 定义数据库实体模型
// 本文件定义提醒模型，唯一索引保证每联系人至多一条未关闭提醒
package model

import (
	"database/sql"
	"time"

	"gorm.io/gorm"

	"warmline_server/pkg/enum/nudge/nudge_status_enum"
)

// Nudge 提醒模型
// 对应数据库 nudge 表
//
// open_flag 是"未关闭"标志列：状态为 PENDING/SNOOZED 时为 1，否则为 NULL。
// (contact_id, open_flag) 上的唯一索引在存储层保证并发生成时
// 每个联系人至多一条未关闭提醒（MySQL 唯一索引允许多个 NULL）
type Nudge struct {
	gorm.Model

	// Uuid 提醒唯一标识
	// 格式：N + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:提醒唯一id"`

	// UserId 所属用户的 Uuid
	UserId string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`

	// ContactId 关联联系人的 Uuid
	ContactId string `gorm:"column:contact_id;uniqueIndex:uniq_contact_open;type:char(20);not null;comment:联系人id"`

	// Type 提醒类型
	// 0.温度下降，1.重新联系，2.生日，3.其他
	Type int8 `gorm:"column:type;not null;comment:提醒类型，0.温度下降，1.重新联系，2.生日，3.其他"`

	// Status 提醒状态
	// 0.待处理，1.已推迟，2.已忽略，3.已完成
	Status int8 `gorm:"column:status;index;not null;comment:状态，0.待处理，1.已推迟，2.已忽略，3.已完成"`

	// Urgency 紧急度，1.低，2.中，3.高
	Urgency int8 `gorm:"column:urgency;not null;comment:紧急度，1.低，2.中，3.高"`

	// Title 提醒标题
	Title string `gorm:"column:title;type:varchar(120);not null;comment:标题"`

	// Body 提醒正文
	Body string `gorm:"column:body;type:varchar(500);comment:正文"`

	// SuggestedAction 建议动作文案
	SuggestedAction string `gorm:"column:suggested_action;type:varchar(200);comment:建议动作"`

	// ScheduledFor 计划提醒时间
	ScheduledFor time.Time `gorm:"column:scheduled_for;type:datetime;not null;comment:计划时间"`

	// SnoozedUntil 推迟到的时间，过期后重新视为待处理
	SnoozedUntil sql.NullTime `gorm:"column:snoozed_until;type:datetime;comment:推迟到"`

	// OpenFlag 未关闭标志：1=未关闭(PENDING/SNOOZED)，NULL=已关闭
	// 参与 uniq_contact_open 唯一索引
	OpenFlag *int8 `gorm:"column:open_flag;uniqueIndex:uniq_contact_open;comment:未关闭标志"`
}

// TableName 指定表名
func (Nudge) TableName() string {
	return "nudge"
}

// openFlagValue 未关闭标志的取值
var openFlagValue int8 = 1

// BeforeSave GORM Hook：写入前同步 open_flag 与 status
// 状态与标志列必须在同一个写路径内保持一致，否则唯一约束失去意义
func (n *Nudge) BeforeSave(tx *gorm.DB) error {
	if nudge_status_enum.IsOpen(n.Status) {
		n.OpenFlag = &openFlagValue
	} else {
		n.OpenFlag = nil
	}
	return nil
}

// IsOpen 判断提醒是否处于未关闭状态
// 已推迟但 snoozed_until 已过期的提醒仍是未关闭的（阻止重复生成），
// 只是在列表中重新显示为待处理
func (n *Nudge) IsOpen() bool {
	return nudge_status_enum.IsOpen(n.Status)
}
