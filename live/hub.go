package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/neo-dine/utils"
)

// Event types
const (
	EventOrderUpdate   = "order_update"
	EventToast         = "toast"
	EventToastExpired  = "toast_expired"
	EventBookingUpdate = "booking_update"
	EventCartUpdate    = "cart_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// writeWait bounds one write so a stalled socket cannot hold the hub.
const writeWait = 5 * time.Second

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub menampung koneksi websocket per visitor
type Hub struct {
	clients map[string]map[Conn]struct{} // visitor -> conns
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[Conn]struct{}),
	}
}

// Register -> menambahkan connection untuk visitor
func (h *Hub) Register(visitorID string, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	conns, ok := h.clients[visitorID]
	if !ok {
		conns = make(map[Conn]struct{})
		h.clients[visitorID] = conns
	}
	conns[conn] = struct{}{}
}

// Unregister -> melepaskan connection
func (h *Hub) Unregister(visitorID string, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if conns, ok := h.clients[visitorID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, visitorID)
		}
	}
	conn.Close()
}

// Connections returns how many sockets the visitor has open.
func (h *Hub) Connections(visitorID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients[visitorID])
}

// Send pushes msg to every socket of the visitor. Sockets that fail to
// accept the write are dropped.
func (h *Hub) Send(visitorID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients[visitorID] {
		err := conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = conn.WriteMessage(websocket.TextMessage, data)
		}
		if err != nil {
			utils.ErrorLogger.Printf("Error sending %s to visitor: %v", msg.Event, err)
			delete(h.clients[visitorID], conn)
			conn.Close()
		}
	}
	if len(h.clients[visitorID]) == 0 {
		delete(h.clients, visitorID)
	}
}
