// Package websocket 实现事件推送网关
// 单向通道：服务端把提醒/温度事件推给在线客户端，不接收业务消息
package websocket

// 事件类型
const (
	EventNudgesGenerated     = "nudges_generated"      // 新提醒生成
	EventWarmthStatusChanged = "warmth_status_changed" // 联系人温度状态变化
)

// Event 推送事件
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}
