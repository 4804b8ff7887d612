package mq

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"warmline_server/pkg/constants"
	"warmline_server/pkg/errorx"
)

// channelQueue 进程内通道任务队列
// 单机部署时的默认模式，不依赖外部消息中间件
type channelQueue struct {
	tasks     chan JobTask
	workerNum int
	wg        sync.WaitGroup

	closeOnce sync.Once
	closed    chan struct{}
}

// NewChannelQueue 创建进程内任务队列
func NewChannelQueue(workerNum int) TaskQueue {
	return &channelQueue{
		tasks:     make(chan JobTask, constants.CHANNEL_SIZE),
		workerNum: workerNum,
		closed:    make(chan struct{}),
	}
}

// Enqueue 任务入队
// 通道满时阻塞等待，由调用方的 ctx 控制超时
// tasks 通道从不关闭，关闭信号只走 closed，避免和入队竞争
func (q *channelQueue) Enqueue(ctx context.Context, task JobTask) error {
	select {
	case <-q.closed:
		return errorx.New(errorx.CodeServerBusy, "任务队列已关闭")
	default:
	}

	select {
	case <-q.closed:
		return errorx.New(errorx.CodeServerBusy, "任务队列已关闭")
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return errorx.Wrap(ctx.Err(), errorx.CodeServerBusy, "任务入队超时")
	}
}

// Start 启动 Worker 消费循环
func (q *channelQueue) Start() {
	for i := 0; i < q.workerNum; i++ {
		q.wg.Add(1)
		go q.startWorker(i)
	}
	zap.L().Info("Channel task queue started", zap.Int("workers", q.workerNum))
}

// startWorker 单个 Worker 消费循环
// panic 只丢弃当前任务并重启 Worker，不拖垮整个队列
func (q *channelQueue) startWorker(id int) {
	defer q.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("Task worker panic", zap.Int("worker", id), zap.Any("recover", r))
			q.wg.Add(1)
			go q.startWorker(id) // 重启
		}
	}()

	for {
		select {
		case task := <-q.tasks:
			q.runTask(task)
		case <-q.closed:
			// 关闭后把缓冲里剩余的任务消化完再退出
			for {
				select {
				case task := <-q.tasks:
					q.runTask(task)
				default:
					return
				}
			}
		}
	}
}

func (q *channelQueue) runTask(task JobTask) {
	if executor := GetTaskExecutor(); executor != nil {
		executor.Execute(task)
	} else {
		zap.L().Warn("No task executor registered, dropping task",
			zap.String("job_name", task.JobName), zap.String("user_id", task.UserId))
	}
}

// Close 停止接收新任务并等待在途任务处理完
func (q *channelQueue) Close() error {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
	q.wg.Wait()
	return nil
}
