// Package direction_enum 定义互动方向枚举
package direction_enum

const (
	OUTBOUND int8 = 0 // 用户主动发起
	INBOUND  int8 = 1 // 对方发起
	MUTUAL   int8 = 2 // 双向（如视频通话、见面）
)

// IsValid 校验方向取值是否合法
func IsValid(direction int8) bool {
	return direction >= OUTBOUND && direction <= MUTUAL
}
