package console

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvaluator struct{}

func (fakeEvaluator) Eval(line string) (string, error) {
	if strings.Contains(line, "boom") {
		return "", errors.New("script error: boom")
	}
	return "echo: " + line, nil
}

func dialConsole(t *testing.T) *websocket.Conn {
	t.Helper()

	s := NewServer("unused", fakeEvaluator{})
	ts := httptest.NewServer(http.HandlerFunc(s.serveWS))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestConsoleRoundTrip(t *testing.T) {
	conn := dialConsole(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`naev.ticks()`)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "echo: naev.ticks()", string(msg))
}

func TestConsoleReportsErrors(t *testing.T) {
	conn := dialConsole(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`boom()`)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "error: script error: boom", string(msg))
}

func TestConsoleMultipleLines(t *testing.T) {
	conn := dialConsole(t)

	for _, line := range []string{"a", "b", "c"} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(line)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "echo: "+line, string(msg))
	}
}
