package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"warmline_server/pkg/constants"
)

// Client 一个在线客户端连接
type Client struct {
	Conn *websocket.Conn
	Uuid string
	Send chan []byte // 待推送事件
}

// hub 在线客户端表，一个用户同时只保留一条连接
type hub struct {
	mutex   sync.RWMutex
	clients map[string]*Client
}

var connHub = &hub{clients: make(map[string]*Client)}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 跨域检查交给外层 CORS 中间件
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewClientInit 把 HTTP 连接升级为 WebSocket 并注册到在线表
func NewClientInit(c *gin.Context, clientId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("WebSocket upgrade error", zap.String("client_id", clientId), zap.Error(err))
		return
	}

	client := &Client{
		Conn: conn,
		Uuid: clientId,
		Send: make(chan []byte, constants.CHANNEL_SIZE),
	}

	connHub.mutex.Lock()
	// 同一用户的旧连接被新连接顶掉
	if old, ok := connHub.clients[clientId]; ok {
		close(old.Send)
		_ = old.Conn.Close()
	}
	connHub.clients[clientId] = client
	connHub.mutex.Unlock()

	zap.L().Info("WebSocket client connected", zap.String("client_id", clientId))
	go client.writeLoop()
	go client.readLoop()
}

// writeLoop 把 Send 通道中的事件写出到连接
func (c *Client) writeLoop() {
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.L().Error("WebSocket write error", zap.String("client_id", c.Uuid), zap.Error(err))
			ClientLogout(c.Uuid)
			return
		}
	}
}

// readLoop 只用于感知客户端断开，推送通道不接收业务消息
func (c *Client) readLoop() {
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			ClientLogout(c.Uuid)
			return
		}
	}
}

// ClientLogout 注销客户端并关闭连接
func ClientLogout(clientId string) {
	connHub.mutex.Lock()
	defer connHub.mutex.Unlock()
	if client, ok := connHub.clients[clientId]; ok {
		delete(connHub.clients, clientId)
		close(client.Send)
		_ = client.Conn.Close()
		zap.L().Info("WebSocket client disconnected", zap.String("client_id", clientId))
	}
}

// PushToUser 向指定用户推送事件
// 用户不在线或其推送通道已满都静默丢弃：推送只是锦上添花，
// 事实来源永远是拉取接口
func PushToUser(userId string, eventType string, payload interface{}) {
	connHub.mutex.RLock()
	client, ok := connHub.clients[userId]
	connHub.mutex.RUnlock()
	if !ok {
		return
	}

	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		zap.L().Error("Marshal event error", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case client.Send <- data:
	default:
		zap.L().Warn("Client send channel full, dropping event",
			zap.String("client_id", userId), zap.String("type", eventType))
	}
}

// Shutdown 关闭全部连接，服务退出时调用
func Shutdown() {
	connHub.mutex.Lock()
	defer connHub.mutex.Unlock()
	deadline := time.Now().Add(time.Second)
	for uuid, client := range connHub.clients {
		_ = client.Conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"), deadline)
		close(client.Send)
		_ = client.Conn.Close()
		delete(connHub.clients, uuid)
	}
}
