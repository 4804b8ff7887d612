// Package job 实现计划任务的触发与执行
// 触发端点把一次运行拆成按用户的任务单元入队；
// 本包同时实现 mq.TaskExecutor，消费端逐任务调用温度/提醒服务，
// 批次进度通过 Redis 计数器聚合，全部任务落地后回写 job_log
package job

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"warmline_server/internal/dao/mysql/repository"
	myredis "warmline_server/internal/dao/redis"
	"warmline_server/internal/dto/respond"
	"warmline_server/internal/infrastructure/mq"
	"warmline_server/internal/model"
	"warmline_server/pkg/enum/job/job_status_enum"
	"warmline_server/pkg/errorx"
)

// enqueueTimeout 单个任务入队的最长等待
const enqueueTimeout = 5 * time.Second

// progressTTL 批次进度计数器的保底过期时间
const progressTTL = 24 * time.Hour

// WarmthRunner 温度重算入口，由 warmth 服务实现
type WarmthRunner interface {
	RecalculateAll(userId string) (*respond.RecalculateWarmthRespond, error)
}

// NudgeRunner 提醒生成入口，由 nudge 服务实现
type NudgeRunner interface {
	GenerateForUser(userId string) (*respond.GenerateNudgesRespond, error)
}

// jobService 计划任务业务逻辑实现
type jobService struct {
	repos  *repository.Repositories
	cache  myredis.AsyncCacheService
	warmth WarmthRunner
	nudge  NudgeRunner
}

// NewJobService 构造函数
func NewJobService(repos *repository.Repositories, cache myredis.AsyncCacheService,
	warmthRunner WarmthRunner, nudgeRunner NudgeRunner) *jobService {
	return &jobService{
		repos:  repos,
		cache:  cache,
		warmth: warmthRunner,
		nudge:  nudgeRunner,
	}
}

// TriggerWarmthRecalculation 触发全量温度重算
func (j *jobService) TriggerWarmthRecalculation() (*respond.CronTriggerRespond, error) {
	return j.trigger(mq.JobWarmthRecalculate)
}

// TriggerNudgeGeneration 触发全量提醒生成
func (j *jobService) TriggerNudgeGeneration() (*respond.CronTriggerRespond, error) {
	return j.trigger(mq.JobNudgeGenerate)
}

// trigger 公共触发路径
// 写入 started 状态的 job_log，为每个活跃用户入队一个任务单元
func (j *jobService) trigger(jobName string) (*respond.CronTriggerRespond, error) {
	users, err := j.repos.User.FindAllActive()
	if err != nil {
		zap.L().Error("Find active users error", zap.String("job_name", jobName), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	jobLog := &model.JobLog{
		Uuid:      uuid.NewString(),
		JobName:   jobName,
		Status:    job_status_enum.STARTED,
		StartedAt: time.Now(),
	}
	if err := j.repos.JobLog.Create(jobLog); err != nil {
		zap.L().Error("Create job log error", zap.String("job_name", jobName), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 没有用户直接标记完成
	if len(users) == 0 {
		if err := j.repos.JobLog.MarkCompleted(jobLog.Uuid, `{"usersProcessed":0}`); err != nil {
			zap.L().Error("Mark empty job completed error", zap.String("job_id", jobLog.Uuid), zap.Error(err))
		}
		return &respond.CronTriggerRespond{JobId: jobLog.Uuid, UsersQueued: 0}, nil
	}

	// 批次总数写入 Redis，消费端据此判断批次是否收尾
	ctx := context.Background()
	total := strconv.Itoa(len(users))
	if err := j.cache.Set(ctx, j.progressKey(jobLog.Uuid, "total"), total, progressTTL); err != nil {
		zap.L().Error("Store job total error", zap.String("job_id", jobLog.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	queued := 0
	for _, user := range users {
		enqueueCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
		err := mq.GetQueue().Enqueue(enqueueCtx, mq.JobTask{
			JobName: jobName,
			UserId:  user.Uuid,
			JobId:   jobLog.Uuid,
		})
		cancel()
		if err != nil {
			zap.L().Error("Enqueue job task error",
				zap.String("job_id", jobLog.Uuid), zap.String("user_id", user.Uuid), zap.Error(err))
			// 入队失败按已处理计，否则批次永远无法收尾
			j.advanceProgress(jobLog.Uuid, jobName, 0, 1)
			continue
		}
		queued++
	}

	zap.L().Info("Job triggered",
		zap.String("job_name", jobName),
		zap.String("job_id", jobLog.Uuid),
		zap.Int("users_queued", queued))

	return &respond.CronTriggerRespond{JobId: jobLog.Uuid, UsersQueued: queued}, nil
}

// Execute 实现 mq.TaskExecutor，消费单个任务单元
// 单用户失败只计入失败数，不影响批次内其他用户
func (j *jobService) Execute(task mq.JobTask) {
	var changed, failed int64
	switch task.JobName {
	case mq.JobWarmthRecalculate:
		rsp, err := j.warmth.RecalculateAll(task.UserId)
		if err != nil {
			zap.L().Error("Warmth recalculation task error",
				zap.String("job_id", task.JobId), zap.String("user_id", task.UserId), zap.Error(err))
			failed = 1
		} else {
			changed = int64(rsp.Updated)
		}
	case mq.JobNudgeGenerate:
		rsp, err := j.nudge.GenerateForUser(task.UserId)
		if err != nil {
			zap.L().Error("Nudge generation task error",
				zap.String("job_id", task.JobId), zap.String("user_id", task.UserId), zap.Error(err))
			failed = 1
		} else {
			changed = int64(rsp.Created)
		}
	default:
		zap.L().Warn("Unknown job task", zap.String("job_name", task.JobName))
		failed = 1
	}

	j.advanceProgress(task.JobId, task.JobName, changed, failed)
}

// advanceProgress 推进批次进度
// processed 追上 total 的那一次调用负责回写 job_log 并清理计数器
func (j *jobService) advanceProgress(jobId, jobName string, changed, failed int64) {
	ctx := context.Background()

	if changed > 0 {
		if _, err := j.cache.IncrBy(ctx, j.progressKey(jobId, "changed"), changed); err != nil {
			zap.L().Error("Advance changed counter error", zap.String("job_id", jobId), zap.Error(err))
		}
	}
	if failed > 0 {
		if _, err := j.cache.IncrBy(ctx, j.progressKey(jobId, "failed"), failed); err != nil {
			zap.L().Error("Advance failed counter error", zap.String("job_id", jobId), zap.Error(err))
		}
	}

	processed, err := j.cache.IncrBy(ctx, j.progressKey(jobId, "processed"), 1)
	if err != nil {
		zap.L().Error("Advance processed counter error", zap.String("job_id", jobId), zap.Error(err))
		return
	}

	totalStr, err := j.cache.Get(ctx, j.progressKey(jobId, "total"))
	if err != nil || totalStr == "" {
		return
	}
	total, err := strconv.ParseInt(totalStr, 10, 64)
	if err != nil || processed < total {
		return
	}

	j.finishBatch(ctx, jobId, jobName, total)
}

// finishBatch 批次收尾：聚合计数器回写 job_log，清理进度键
func (j *jobService) finishBatch(ctx context.Context, jobId, jobName string, total int64) {
	changedStr, _ := j.cache.Get(ctx, j.progressKey(jobId, "changed"))
	failedStr, _ := j.cache.Get(ctx, j.progressKey(jobId, "failed"))
	changed, _ := strconv.ParseInt(changedStr, 10, 64)
	failedCount, _ := strconv.ParseInt(failedStr, 10, 64)

	changedField := "contactsUpdated"
	if jobName == mq.JobNudgeGenerate {
		changedField = "nudgesCreated"
	}
	result := fmt.Sprintf(`{"usersProcessed":%d,"%s":%d,"usersFailed":%d}`,
		total, changedField, changed, failedCount)

	var err error
	if failedCount >= total {
		// 全军覆没才算整体失败
		err = j.repos.JobLog.MarkFailed(jobId, result)
	} else {
		err = j.repos.JobLog.MarkCompleted(jobId, result)
	}
	if err != nil {
		zap.L().Error("Write back job log error", zap.String("job_id", jobId), zap.Error(err))
		return
	}

	if err := j.cache.DeleteByPattern(ctx, "job_progress_"+jobId+"_*"); err != nil {
		zap.L().Error("Cleanup job progress keys error", zap.String("job_id", jobId), zap.Error(err))
	}

	zap.L().Info("Job batch finished",
		zap.String("job_name", jobName),
		zap.String("job_id", jobId),
		zap.Int64("users_processed", total),
		zap.Int64("changed", changed),
		zap.Int64("users_failed", failedCount))
}

// progressKey 批次进度计数器键
func (j *jobService) progressKey(jobId, field string) string {
	return "job_progress_" + jobId + "_" + field
}
