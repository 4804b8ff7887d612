package warmth

import (
	"time"

	"go.uber.org/zap"

	"warmline_server/internal/model"
	"warmline_server/pkg/enum/interaction/direction_enum"
	"warmline_server/pkg/enum/interaction/interaction_type_enum"
)

// boostPair 一种互动类型的主动/被动加成值
// 主动联系的加成略高于被动，鼓励用户发起联系
type boostPair struct {
	Outbound float64
	Inbound  float64
}

// boostTable 互动类型 -> 加成值映射
// 同步/高投入渠道（通话、视频、见面）高于异步渠道（文字、社交媒体）
var boostTable = map[int8]boostPair{
	interaction_type_enum.MESSAGE:    {Outbound: 5, Inbound: 3},
	interaction_type_enum.CALL:       {Outbound: 10, Inbound: 8},
	interaction_type_enum.VIDEO_CALL: {Outbound: 12, Inbound: 12},
	interaction_type_enum.MEETING:    {Outbound: 12, Inbound: 12},
	interaction_type_enum.VOICE_NOTE: {Outbound: 7, Inbound: 7},
	interaction_type_enum.EMAIL:      {Outbound: 4, Inbound: 4},
	interaction_type_enum.SOCIAL:     {Outbound: 2, Inbound: 2},
	interaction_type_enum.MANUAL:     {Outbound: 3, Inbound: 3},
	interaction_type_enum.IN_PERSON:  {Outbound: 15, Inbound: 15},
}

// defaultBoost 未知互动类型的兜底加成
const defaultBoost = 3.0

// BoostValue 返回单次互动的加成值
// 双向互动按主动取值；未知类型取兜底值并记录告警，不静默归零
func BoostValue(typ int8, direction int8) float64 {
	pair, ok := boostTable[typ]
	if !ok {
		zap.L().Warn("unknown interaction type, using default boost",
			zap.Int8("type", typ), zap.Float64("default", defaultBoost))
		return defaultBoost
	}
	if direction == direction_enum.INBOUND {
		return pair.Inbound
	}
	// OUTBOUND 与 MUTUAL 都按主动取值
	return pair.Outbound
}

// BoostSum 汇总回溯窗口内全部互动的加成
// 加成是"互动是否仍在窗口内"的函数，每次重算都重新求和，
// 不在联系人上累积可变状态，保证重复调用不会重复计入
func BoostSum(interactions []model.Interaction, windowStart time.Time) float64 {
	var sum float64
	for _, it := range interactions {
		if it.OccurredAt.Before(windowStart) {
			continue
		}
		sum += BoostValue(it.Type, it.Direction)
	}
	return sum
}
