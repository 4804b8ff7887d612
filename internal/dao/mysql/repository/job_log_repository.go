package repository

import (
	"time"

	"gorm.io/gorm"

	"warmline_server/internal/model"
	"warmline_server/pkg/enum/job/job_status_enum"
)

type jobLogRepository struct {
	db *gorm.DB
}

// NewJobLogRepository 创建计划任务日志 Repository
func NewJobLogRepository(db *gorm.DB) JobLogRepository {
	return &jobLogRepository{db: db}
}

// Create 创建运行记录，初始状态 STARTED
func (r *jobLogRepository) Create(log *model.JobLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return wrapDBError(err, "创建任务日志")
	}
	return nil
}

// MarkCompleted 回写完成状态和结果摘要
func (r *jobLogRepository) MarkCompleted(uuid string, result string) error {
	now := time.Now()
	if err := r.db.Model(&model.JobLog{}).Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":       job_status_enum.COMPLETED,
			"result":       result,
			"completed_at": now,
		}).Error; err != nil {
		return wrapDBErrorf(err, "回写任务完成 uuid=%s", uuid)
	}
	return nil
}

// MarkFailed 回写失败状态和原因
func (r *jobLogRepository) MarkFailed(uuid string, errMsg string) error {
	now := time.Now()
	if err := r.db.Model(&model.JobLog{}).Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":       job_status_enum.FAILED,
			"error":        errMsg,
			"completed_at": now,
		}).Error; err != nil {
		return wrapDBErrorf(err, "回写任务失败 uuid=%s", uuid)
	}
	return nil
}
