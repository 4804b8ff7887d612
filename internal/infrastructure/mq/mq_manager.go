package mq

import (
	"go.uber.org/zap"

	myconfig "warmline_server/internal/config"
	"warmline_server/pkg/constants"
)

// queue 全局任务队列实例，按配置的 messageMode 选择实现
var queue TaskQueue

// Init 按配置初始化任务队列
// messageMode 为 "kafka" 时使用 Kafka，否则使用进程内通道
func Init() {
	conf := myconfig.GetConfig()
	if conf.KafkaConfig.MessageMode == constants.KAFKA_MODE {
		queue = NewKafkaQueue()
	} else {
		queue = NewChannelQueue(conf.KafkaConfig.WorkerNum)
	}
	queue.Start()
	zap.L().Info("Task queue initialized", zap.String("mode", conf.KafkaConfig.MessageMode))
}

// GetQueue 获取任务队列实例
func GetQueue() TaskQueue {
	return queue
}

// Shutdown 关闭任务队列
func Shutdown() {
	if queue != nil {
		if err := queue.Close(); err != nil {
			zap.L().Error("Task queue close error", zap.Error(err))
		}
	}
}
