// Package nudge_type_enum 定义提醒类型枚举
package nudge_type_enum

const (
	WARMTH_DECAY int8 = 0 // 温度下降提醒（YELLOW/RED）
	RE_ENGAGE    int8 = 1 // 重新建立联系提醒（DEAD）
	BIRTHDAY     int8 = 2 // 生日提醒
	OTHER        int8 = 3 // 其他
)

var names = map[int8]string{
	WARMTH_DECAY: "WARMTH_DECAY",
	RE_ENGAGE:    "RE_ENGAGE",
	BIRTHDAY:     "BIRTHDAY",
	OTHER:        "OTHER",
}

// Name 返回类型的可读名称
func Name(typ int8) string {
	if name, ok := names[typ]; ok {
		return name
	}
	return "OTHER"
}
