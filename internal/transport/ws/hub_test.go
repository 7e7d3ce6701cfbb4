package ws

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConn(hub *Hub, surveyID string, buffer int) *Connection {
	conn := &Connection{SurveyID: surveyID, Send: make(chan []byte, buffer), hub: hub}
	hub.register(conn)
	return conn
}

func TestBroadcastToSurvey(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	watching := testConn(hub, "survey-1", 4)
	other := testConn(hub, "survey-2", 4)

	hub.BroadcastToSurvey("survey-1", string(MsgInsightsRefreshed), map[string]string{"surveyId": "survey-1"})

	require.Len(t, watching.Send, 1)
	assert.Empty(t, other.Send)

	var msg Message
	require.NoError(t, json.Unmarshal(<-watching.Send, &msg))
	assert.Equal(t, MsgInsightsRefreshed, msg.Type)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "survey-1", payload["surveyId"])
}

func TestBroadcastSkipsSlowConsumers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := testConn(hub, "survey-1", 1)

	hub.BroadcastToSurvey("survey-1", string(MsgInsightsRefreshed), 1)
	hub.BroadcastToSurvey("survey-1", string(MsgInsightsRefreshed), 2)

	// the second event is dropped, not queued behind a full buffer
	assert.Len(t, conn.Send, 1)
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := testConn(hub, "survey-1", 1)

	hub.unregister(conn)
	_, open := <-conn.Send
	assert.False(t, open)

	// broadcasting after the last dashboard left is a no-op
	hub.BroadcastToSurvey("survey-1", string(MsgInsightsRefreshed), nil)
}
