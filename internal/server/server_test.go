package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soar/padscope/internal/gamepad"
	"github.com/soar/padscope/internal/hub"
)

func newTestServer(t *testing.T) (*httptest.Server, *gamepad.Inbox, *hub.Hub) {
	t.Helper()
	log := zap.NewNop()
	h := hub.NewHub(log)
	b := hub.NewBroadcaster(h, nil, log)
	inbox := gamepad.NewInbox(4)
	s, err := New(h, b, inbox, "127.0.0.1:0", log)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, inbox, h
}

func TestMinifyPage(t *testing.T) {
	page, err := minifyPage(statusPage)
	require.NoError(t, err)
	assert.Less(t, len(page), len(statusPage))
	assert.Contains(t, string(page), "select_controller")
}

func TestStatusPage(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp2, err := http.Get(ts.URL + "/missing")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestWebSocketSelectController(t *testing.T) {
	ts, inbox, h := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg hub.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, hub.TypeFull, msg.Type)
	assert.Equal(t, 1, h.Len())

	require.NoError(t, conn.WriteJSON(hub.ClientMessage{Type: hub.TypeSelectController, InstanceID: 9}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, hub.TypeControllerSelected, msg.Type)
	assert.Equal(t, gamepad.InstanceID(9), msg.InstanceID)

	e, ok := inbox.Poll()
	require.True(t, ok)
	assert.Equal(t, gamepad.EventSelect, e.Kind)
	assert.Equal(t, gamepad.InstanceID(9), e.Which)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"instanceId":9`)
}
