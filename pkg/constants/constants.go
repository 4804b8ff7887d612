package constants

const (
	CHANNEL_SIZE               = 100       // 任务通道大小
	CHANNEL_MODE               = "channel" // 进程内通道任务派发
	KAFKA_MODE                 = "kafka"   // Kafka 任务派发
	REDIS_TIMEOUT              = 5         // redis timeout (分钟)
	REFRESH_TOKEN_EXPIRY_HOURS = 168       // Refresh Token 有效期（小时），168小时 = 7天

	// 温度引擎默认参数，可被 configs/config.toml 中的 warmthConfig 覆盖
	DEFAULT_BOOST_WINDOW_DAYS = 7   // 互动加成回溯窗口（天）
	DEFAULT_SCORE_EPSILON     = 0.5 // 分数写回阈值，低于该差值的衰减不落库
	DEFAULT_FREQUENCY_DAYS    = 14  // 新建联系人的默认期望联系频率（天）

	// 提醒生成默认参数
	DEFAULT_MAX_NUDGES_PER_DAY = 5 // 每用户每日提醒上限
	BIRTHDAY_WINDOW_DAYS       = 3 // 生日提醒提前量（天），[0,3] 内触发
)
