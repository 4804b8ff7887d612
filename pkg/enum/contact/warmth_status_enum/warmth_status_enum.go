// Package warmth_status_enum 定义联系人温度状态枚举
// 状态由温度分数唯一推导（见 service/warmth 的分级器），调用方不得独立设置
package warmth_status_enum

// 温度状态，按健康程度降序排列
const (
	GREEN  int8 = 0 // 健康，分数 >= 60
	YELLOW int8 = 1 // 降温中，分数 [30, 60)
	RED    int8 = 2 // 冷却，分数 [10, 30)
	DEAD   int8 = 3 // 失联，分数 < 10
)

// names 状态名称表，用于日志和提醒文案
var names = map[int8]string{
	GREEN:  "GREEN",
	YELLOW: "YELLOW",
	RED:    "RED",
	DEAD:   "DEAD",
}

// Name 返回状态的可读名称，未知状态返回 "UNKNOWN"
func Name(status int8) string {
	if name, ok := names[status]; ok {
		return name
	}
	return "UNKNOWN"
}
