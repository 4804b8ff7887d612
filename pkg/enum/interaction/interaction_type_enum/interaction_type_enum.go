// Package interaction_type_enum 定义互动类型枚举
// 同步/高投入渠道（通话、视频、见面）的温度加成高于异步渠道（文字、社交媒体）
package interaction_type_enum

const (
	MESSAGE    int8 = 0 // 文字消息
	CALL       int8 = 1 // 语音通话
	VIDEO_CALL int8 = 2 // 视频通话
	MEETING    int8 = 3 // 会面/约见
	VOICE_NOTE int8 = 4 // 语音留言
	EMAIL      int8 = 5 // 邮件
	SOCIAL     int8 = 6 // 社交媒体互动
	MANUAL     int8 = 7 // 手动补录
	IN_PERSON  int8 = 8 // 当面相处
)

var names = map[int8]string{
	MESSAGE:    "message",
	CALL:       "call",
	VIDEO_CALL: "video_call",
	MEETING:    "meeting",
	VOICE_NOTE: "voice_note",
	EMAIL:      "email",
	SOCIAL:     "social",
	MANUAL:     "manual",
	IN_PERSON:  "in_person",
}

// Name 返回类型的可读名称，未知类型返回 "unknown"
func Name(typ int8) string {
	if name, ok := names[typ]; ok {
		return name
	}
	return "unknown"
}

// IsValid 校验类型取值是否合法
func IsValid(typ int8) bool {
	_, ok := names[typ]
	return ok
}
