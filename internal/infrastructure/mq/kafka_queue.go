package mq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	myconfig "warmline_server/internal/config"
	"warmline_server/pkg/errorx"
)

// kafkaQueue Kafka 任务队列
// 多实例部署时使用：任意实例触发入队，消费组内分摊执行
type kafkaQueue struct {
	writer *kafka.Writer
	reader *kafka.Reader
	quit   chan struct{}
}

// NewKafkaQueue 创建 Kafka 任务队列
func NewKafkaQueue() TaskQueue {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.JobTopic,
		Balancer:               &kafka.Hash{}, // 同一用户的任务落到同一分区，保序
		WriteTimeout:           kafkaConfig.Timeout * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: false,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.JobTopic,
		CommitInterval: kafkaConfig.Timeout * time.Second,
		GroupID:        "warmline_jobs",
		StartOffset:    kafka.LastOffset,
	})
	return &kafkaQueue{
		writer: writer,
		reader: reader,
		quit:   make(chan struct{}),
	}
}

// CreateJobTopic 创建任务主题
// 部署初始化时调用一次，主题已存在时报错无害
func CreateJobTopic() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	conn, err := kafka.Dial("tcp", kafkaConfig.HostPort)
	if err != nil {
		zap.L().Error("Kafka dial error", zap.Error(err))
		return
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             kafkaConfig.JobTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
	}
	if err = conn.CreateTopics(topicConfigs...); err != nil {
		zap.L().Error("Kafka create topic error", zap.Error(err))
	}
}

// Enqueue 任务入队
// Key 取 userId，保证同一用户的任务顺序消费
func (q *kafkaQueue) Enqueue(ctx context.Context, task JobTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "任务序列化失败")
	}
	if err := q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(task.UserId),
		Value: data,
	}); err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "任务写入 Kafka 失败")
	}
	return nil
}

// Start 启动消费循环
func (q *kafkaQueue) Start() {
	go q.consumeLoop()
	zap.L().Info("Kafka task queue started")
}

// consumeLoop 消费循环
// 单条任务解析/执行失败只记录日志，循环继续
func (q *kafkaQueue) consumeLoop() {
	for {
		select {
		case <-q.quit:
			return
		default:
		}

		msg, err := q.reader.ReadMessage(context.Background())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return // reader 已关闭
			}
			zap.L().Error("Kafka read message error", zap.Error(err))
			continue
		}

		var task JobTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			zap.L().Error("Kafka task decode error",
				zap.ByteString("value", msg.Value), zap.Error(err))
			continue
		}

		if executor := GetTaskExecutor(); executor != nil {
			executor.Execute(task)
		} else {
			zap.L().Warn("No task executor registered, dropping task",
				zap.String("job_name", task.JobName), zap.String("user_id", task.UserId))
		}
	}
}

// Close 停止消费并释放资源
func (q *kafkaQueue) Close() error {
	close(q.quit)
	if err := q.writer.Close(); err != nil {
		zap.L().Error("Kafka writer close error", zap.Error(err))
	}
	return q.reader.Close()
}
