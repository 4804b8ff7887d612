// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"warmline_server/internal/model"
	"warmline_server/pkg/errorx"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
// 功能同 wrapDBError，但支持 fmt.Sprintf 风格的格式化
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.UserInfo, error)
	// FindAllActive 查找所有未禁用的用户（供计划任务逐用户派发）
	FindAllActive() ([]model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
	// UpdateSettings 更新用户提醒偏好
	UpdateSettings(uuid string, updates map[string]interface{}) error
	// UpdateLastLoginAt 记录最近登录时间
	UpdateLastLoginAt(uuid string, at time.Time) error
}

// ContactRepository 联系人数据访问接口
type ContactRepository interface {
	// FindByUuid 根据 UUID 查找联系人
	FindByUuid(uuid string) (*model.Contact, error)
	// FindByUserId 查找用户的全部联系人（含已归档）
	FindByUserId(userId string) ([]model.Contact, error)
	// FindActiveByUserId 查找用户的未归档联系人，温度重算的输入集
	FindActiveByUserId(userId string) ([]model.Contact, error)
	// FindColdByUserId 查找温度状态在给定集合内的未归档联系人
	// 排序：优先级降序，温度分数升序；limit <= 0 表示不限制
	FindColdByUserId(userId string, statuses []int8, limit int) ([]model.Contact, error)
	// FindWithBirthdayByUserId 查找设置了生日的未归档联系人
	// 生日窗口的月/日判断在 service 层完成
	FindWithBirthdayByUserId(userId string) ([]model.Contact, error)
	// Create 创建联系人
	Create(contact *model.Contact) error
	// CreateBatch 批量创建联系人（导入路径）
	CreateBatch(contacts []model.Contact) error
	// UpdateFields 按字段更新联系人资料
	UpdateFields(uuid string, updates map[string]interface{}) error
	// UpdateWarmth 写回温度分数与状态（重算路径）
	UpdateWarmth(uuid string, score float64, status int8) error
	// TouchInteraction 互动路径写回：温度 + 最近互动时间戳
	// direction 取 direction_enum 的值，用于同步 last_outbound_at/last_inbound_at
	TouchInteraction(uuid string, score float64, status int8, direction int8, occurredAt time.Time) error
	// Archive 归档联系人
	Archive(userId, contactId string) error
	// CountByStatus 按温度状态统计未归档联系人数量
	CountByStatus(userId string) (map[int8]int64, error)
	// AverageScore 未归档联系人的平均温度分数
	AverageScore(userId string) (float64, error)
}

// InteractionRepository 互动记录数据访问接口
// 互动记录不可变，只有创建和查询
type InteractionRepository interface {
	// Create 创建互动记录
	Create(interaction *model.Interaction) error
	// FindByContactIdSince 查找联系人在给定时间之后的互动，按发生时间降序
	FindByContactIdSince(contactId string, since time.Time) ([]model.Interaction, error)
	// FindRecentByContactId 查找联系人最近 limit 条互动，按发生时间降序
	FindRecentByContactId(contactId string, limit int) ([]model.Interaction, error)
}

// NudgeRepository 提醒数据访问接口
type NudgeRepository interface {
	// Create 创建提醒
	// 命中 (contact_id, open_flag) 唯一索引冲突时返回 CodeDuplicateNudge，
	// 调用方应视为无害空操作（并发运行已经生成过了）
	Create(nudge *model.Nudge) error
	// FindByUuid 根据 UUID 查找提醒
	FindByUuid(uuid string) (*model.Nudge, error)
	// FindOpenByContactId 查找联系人的未关闭提醒，不存在时返回 (nil, nil)
	FindOpenByContactId(contactId string) (*model.Nudge, error)
	// FindOpenByUserId 查找用户的全部未关闭提醒，按计划时间升序
	FindOpenByUserId(userId string) ([]model.Nudge, error)
	// CountOpenByUserId 统计用户未关闭提醒数量
	CountOpenByUserId(userId string) (int64, error)
	// CountCreatedSince 统计用户在给定时间之后生成的提醒数量（每日限额用）
	CountCreatedSince(userId string, since time.Time) (int64, error)
	// UpdateStatus 更新提醒状态，snoozedUntil 仅在推迟时有值
	UpdateStatus(uuid string, status int8, snoozedUntil *time.Time) error
}

// JobLogRepository 计划任务日志数据访问接口
type JobLogRepository interface {
	// Create 创建运行记录（状态 STARTED）
	Create(log *model.JobLog) error
	// MarkCompleted 回写完成状态和结果摘要
	MarkCompleted(uuid string, result string) error
	// MarkFailed 回写失败状态和原因
	MarkFailed(uuid string, errMsg string) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db          *gorm.DB              // GORM 数据库实例
	User        UserRepository        // 用户 Repository
	Contact     ContactRepository     // 联系人 Repository
	Interaction InteractionRepository // 互动记录 Repository
	Nudge       NudgeRepository       // 提醒 Repository
	JobLog      JobLogRepository      // 计划任务日志 Repository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		User:        NewUserRepository(db),
		Contact:     NewContactRepository(db),
		Interaction: NewInteractionRepository(db),
		Nudge:       NewNudgeRepository(db),
		JobLog:      NewJobLogRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
