package mq

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingExecutor 记录收到的任务
type recordingExecutor struct {
	mu    sync.Mutex
	tasks []JobTask
}

func (r *recordingExecutor) Execute(task JobTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
}

func (r *recordingExecutor) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

func TestChannelQueueDelivery(t *testing.T) {
	executor := &recordingExecutor{}
	SetTaskExecutor(executor)
	defer SetTaskExecutor(nil)

	queue := NewChannelQueue(2)
	queue.Start()

	ctx := context.Background()
	want := []JobTask{
		{JobName: JobWarmthRecalculate, UserId: "U1", JobId: "J1"},
		{JobName: JobNudgeGenerate, UserId: "U2", JobId: "J1"},
		{JobName: JobWarmthRecalculate, UserId: "U3", JobId: "J1"},
	}
	for _, task := range want {
		if err := queue.Enqueue(ctx, task); err != nil {
			t.Fatalf("Enqueue() error = %v", err)
		}
	}

	// Close 等待在途任务处理完
	if err := queue.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := executor.count(); got != len(want) {
		t.Errorf("executed %d tasks, want %d", got, len(want))
	}
}

func TestChannelQueueEnqueueAfterClose(t *testing.T) {
	queue := NewChannelQueue(1)
	queue.Start()
	if err := queue.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	err := queue.Enqueue(context.Background(), JobTask{JobName: JobWarmthRecalculate, UserId: "U1"})
	if err == nil {
		t.Fatal("Enqueue() after Close should fail")
	}
}

func TestChannelQueueCloseDuringEnqueue(t *testing.T) {
	executor := &recordingExecutor{}
	SetTaskExecutor(executor)
	defer SetTaskExecutor(nil)

	queue := NewChannelQueue(2)
	queue.Start()

	// 与 Close 并发入队，只允许返回队列已关闭错误，不允许 panic
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()
			for {
				err := queue.Enqueue(ctx, JobTask{JobName: JobWarmthRecalculate, UserId: "U1"})
				if err != nil {
					return
				}
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	if err := queue.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	wg.Wait()
}

func TestChannelQueueEnqueueTimeout(t *testing.T) {
	// 不启动 Worker，填满通道后入队应按 ctx 超时返回
	queue := NewChannelQueue(0)

	ctx := context.Background()
	for {
		fillCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		err := queue.Enqueue(fillCtx, JobTask{JobName: JobNudgeGenerate})
		cancel()
		if err != nil {
			// 通道已满，超时返回
			return
		}
	}
}
