// Package model 定义数据库实体模型
// 本文件定义计划任务运行日志模型
package model

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// JobLog 计划任务运行日志
// 对应数据库 job_log 表
// 触发端点写入 started 记录，任务消费完成后回写结果；
// 批处理中单个实体的失败只进日志不进该表，整体失败才标记 failed
type JobLog struct {
	gorm.Model

	// Uuid 运行唯一标识（uuid v4）
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(36);comment:运行唯一id"`

	// JobName 任务名，如 warmth_recalculate / nudge_generate
	JobName string `gorm:"column:job_name;index;type:varchar(40);not null;comment:任务名"`

	// Status 运行状态
	// 0.已开始，1.已完成，2.失败
	Status int8 `gorm:"column:status;not null;comment:状态，0.已开始，1.已完成，2.失败"`

	// Result 结果摘要，JSON 字符串，如 {"usersProcessed":3,"contactsUpdated":17}
	Result string `gorm:"column:result;type:varchar(500);comment:结果摘要"`

	// Error 失败原因
	Error string `gorm:"column:error;type:varchar(500);comment:失败原因"`

	// StartedAt 开始时间
	StartedAt time.Time `gorm:"column:started_at;type:datetime;not null;comment:开始时间"`

	// CompletedAt 结束时间
	CompletedAt sql.NullTime `gorm:"column:completed_at;type:datetime;comment:结束时间"`
}

// TableName 指定表名
func (JobLog) TableName() string {
	return "job_log"
}
