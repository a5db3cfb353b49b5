package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	s := newServer(t)
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/channels/general/watch", nil)
	require.NoError(t, err)
	defer conn.Close()

	post := func(target, body string) {
		resp, err := http.Post(ts.URL+target, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	read := func() message.ViewMessage {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		v, err := message.NewViewMessage(string(data))
		require.NoError(t, err)
		return v
	}

	post("/channels/general/messages",
		`{"author":{"id":"1","name":"Alice"},"content":"tii!dab 2 2","mentions":[{"id":"2","name":"Bob"}]}`)
	v := read()
	assert.Equal(t, "general", v.Channel)
	assert.Contains(t, v.Title, "'s turn")

	post("/channels/general/reactions", `{"player":"1","emoji":"`+session.ReactionCancel+`"}`)
	for !v.Cancelled {
		v = read()
	}
	assert.Equal(t, "Game cancelled by Alice. Go boo them!", v.Title)
}
