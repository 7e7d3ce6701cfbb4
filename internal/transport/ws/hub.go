package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// MessageType defines the type of WebSocket message.
type MessageType string

const (
	MsgInsightsRefreshed MessageType = "insights_refreshed"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections per survey.
type Hub struct {
	conns  map[string]map[*Connection]struct{} // surveyID -> connections
	mu     sync.RWMutex
	logger zerolog.Logger
}

// Connection represents one connected dashboard.
type Connection struct {
	SurveyID string
	Send     chan []byte
	hub      *Hub
}

// NewHub creates a new WebSocket hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]map[*Connection]struct{}),
		logger: logger,
	}
}

func (h *Hub) register(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[conn.SurveyID] == nil {
		h.conns[conn.SurveyID] = make(map[*Connection]struct{})
	}
	h.conns[conn.SurveyID][conn] = struct{}{}
	h.logger.Debug().Str("surveyId", conn.SurveyID).Msg("dashboard connected")
}

func (h *Hub) unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[conn.SurveyID]; ok {
		if _, ok := set[conn]; ok {
			delete(set, conn)
			close(conn.Send)
			if len(set) == 0 {
				delete(h.conns, conn.SurveyID)
			}
		}
	}
}

// BroadcastToSurvey sends a typed event to every dashboard watching the
// survey. Implements service.Broadcaster.
func (h *Hub) BroadcastToSurvey(surveyID string, msgType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("broadcast payload marshal failed")
		return
	}
	data, err := json.Marshal(Message{Type: MessageType(msgType), Payload: raw})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns[surveyID] {
		select {
		case conn.Send <- data:
		default:
			// Slow consumer; drop the event rather than block the pipeline.
		}
	}
}
