package timetable

import (
	"sync"

	"roomhub/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub fans booking changes out to every dashboard watching an organization,
// so a drag committed in one browser shows up in the others without a
// reload. Delivery is best-effort; a failed write drops the connection.
type Hub struct {
	conns map[int64]map[*websocket.Conn]bool
	mutex sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(orgID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.conns[orgID] == nil {
		h.conns[orgID] = make(map[*websocket.Conn]bool)
	}
	h.conns[orgID][conn] = true
}

func (h *Hub) Unregister(orgID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if set, ok := h.conns[orgID]; ok {
		if set[conn] {
			_ = conn.Close()
			delete(set, conn)
		}
		if len(set) == 0 {
			delete(h.conns, orgID)
		}
	}
}

// PublishBookingChanged implements booking.EventPublisher.
func (h *Hub) PublishBookingChanged(orgID int64, b *domain.Booking) {
	event := BookingEvent{Type: "booking_changed", Booking: b}

	h.mutex.RLock()
	set := h.conns[orgID]
	targets := make([]*websocket.Conn, 0, len(set))
	for conn := range set {
		targets = append(targets, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range targets {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(orgID, conn)
		}
	}
}

func (h *Hub) WatcherCount(orgID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.conns[orgID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for orgID, set := range h.conns {
		for conn := range set {
			_ = conn.Close()
		}
		delete(h.conns, orgID)
	}
}
