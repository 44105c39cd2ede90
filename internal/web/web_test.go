package web_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nbkstem/booth/helpers"
	"github.com/nbkstem/booth/internal/kiosk"
	state_new "github.com/nbkstem/booth/internal/state/new"
	"github.com/nbkstem/booth/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCue struct{}

func (nopCue) Play(context.Context) string { return "" }

type tenv struct {
	t     testing.TB
	k     *kiosk.Kiosk
	sched *kiosk.ManualScheduler
	srv   *web.Server
	chat  *helpers.MockHTTP
}

func newEnv(t testing.TB, conf string) *tenv {
	ctx, g := state_new.NewTestContext(t, "", conf)
	env := &tenv{
		t:     t,
		sched: kiosk.NewManualScheduler(),
		chat:  &helpers.MockHTTP{Body: []byte(`{"text":"Xin chào!"}`)},
	}
	g.Hardware.HTTP = env.chat.Client()
	env.k = &kiosk.Kiosk{Scheduler: env.sched, Cue: nopCue{}}
	require.NoError(t, env.k.Init(ctx))
	go env.k.Loop(ctx)
	srv, err := web.New(ctx, env.k)
	require.NoError(t, err)
	env.srv = srv
	return env
}

func (self *tenv) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	self.srv.ServeHTTP(rec, req)
	return rec
}

func (self *tenv) input(kind string) kiosk.Snapshot {
	rec := self.request(http.MethodPost, "/api/input", `{"kind":"`+kind+`"}`)
	require.Equal(self.t, http.StatusOK, rec.Code, rec.Body.String())
	return self.k.Snapshot()
}

// advance virtual time, non tap input makes sure loop handled fired timers
func (self *tenv) advance(d time.Duration) kiosk.Snapshot {
	self.sched.Advance(d)
	return self.input("pointermove")
}

func TestStateFlow(t *testing.T) {
	t.Parallel()

	env := newEnv(t, `ui { booth_number = "40" }`)
	rec := env.request(http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"Idle"`)
	assert.Contains(t, rec.Body.String(), "Gian hàng số 40")

	s := env.input("touch")
	assert.Equal(t, kiosk.StateUnlocking, s.State)
	s = env.advance(2500 * time.Millisecond)
	assert.Equal(t, kiosk.StateGranted, s.State)
	s = env.advance(5000 * time.Millisecond)
	assert.Equal(t, kiosk.StateActive, s.State)

	rec = env.request(http.MethodPost, "/api/view", `{"view":"gallery"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"view":"gallery"`)

	rec = env.request(http.MethodPost, "/api/overlay", `{"overlay":"wheel","open":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overlays":["wheel"]`)
	assert.Contains(t, rec.Body.String(), `"timer_armed":false`)

	rec = env.request(http.MethodPost, "/api/keyboard/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.request(http.MethodPost, "/api/keyboard/buffer", `{"raw":"Vieejt"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"Việt"`)
	rec = env.request(http.MethodPost, "/api/keyboard/key", `{"key":"backspace"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"Việ"`)
}

func TestValidation(t *testing.T) {
	t.Parallel()

	env := newEnv(t, "")
	cases := []struct {
		name   string
		path   string
		body   string
		code   int
		expect string
	}{
		{"input-kind", "/api/input", `{"kind":"blink"}`, http.StatusBadRequest, `"kind":"oneof=`},
		{"input-empty", "/api/input", `{}`, http.StatusBadRequest, `"kind":"required"`},
		{"overlay-open", "/api/overlay", `{"overlay":"frame"}`, http.StatusBadRequest, `"open":"required"`},
		{"view", "/api/view", `{"view":"settings"}`, http.StatusBadRequest, `"view":"oneof=`},
		{"report", "/api/report", `{"subject":"mic"}`, http.StatusBadRequest, `"subject":"oneof=`},
		{"syntax", "/api/view", `{"view":}`, http.StatusBadRequest, `"error":`},
		{"chat-empty", "/api/chat", `{"prompt":""}`, http.StatusBadRequest, `"prompt":"required"`},
		{"attach-base64", "/api/attach", `{"name":"a.png","mimeType":"image/png","data":"%%%"}`, http.StatusBadRequest, `"data":"base64"`},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			rec := env.request(http.MethodPost, c.path, c.body)
			assert.Equal(t, c.code, rec.Code)
			assert.Contains(t, rec.Body.String(), c.expect)
		})
	}
}

func TestTelex(t *testing.T) {
	t.Parallel()

	env := newEnv(t, "")
	rec := env.request(http.MethodPost, "/api/telex", `{"raw":"Nguyeexn Birnh Khieem"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"Nguyễn Bỉnh Khiêm"}`, rec.Body.String())
}

func TestChat(t *testing.T) {
	t.Parallel()

	env := newEnv(t, `
chat {
  endpoint = "http://chat.test/ask"
  preface = "Gian hàng STEM"
}`)
	var got string
	env.chat.Fun = func(req *http.Request) (*http.Response, error) {
		b, _ := ioutil.ReadAll(req.Body)
		got = string(b)
		env.chat.Fun = nil
		return env.chat.RoundTrip(req)
	}
	rec := env.request(http.MethodPost, "/api/chat", `{"prompt":"robot là gì"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"Xin chào!"}`, rec.Body.String())
	assert.Contains(t, got, `Gian hàng STEM\n\nrobot là gì`)

	// upstream failure is still 200 with friendly text
	env.chat.Header = []byte("HTTP/1.0 502 Bad Gateway\r\n\r\n")
	rec = env.request(http.MethodPost, "/api/chat", `{"prompt":"robot là gì"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gặp lỗi khi kết nối tới AI")
}

func TestStore(t *testing.T) {
	t.Parallel()

	env := newEnv(t, "")
	rec := env.request(http.MethodGet, "/api/store/guestbook", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(http.MethodPut, "/api/store/guestbook", `[{"name":"An","text":"Hay quá"}]`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = env.request(http.MethodGet, "/api/store/guestbook", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"An","text":"Hay quá"}]`, rec.Body.String())

	rec = env.request(http.MethodPut, "/api/store/guestbook", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(http.MethodGet, "/api/store/guestbook?pull=1", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAttach(t *testing.T) {
	t.Parallel()

	env := newEnv(t, `storage { attachment_max_kb = 1 }`)
	rec := env.request(http.MethodPost, "/api/attach", `{"name":"a.png","mimeType":"image/png","data":"aGVsbG8="}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"url":"data:image/png;base64,aGVsbG8="}`, rec.Body.String())

	big := strings.Repeat("QUFB", 400) // 1200 bytes
	rec = env.request(http.MethodPost, "/api/attach", `{"name":"b.png","mimeType":"image/png","data":"`+big+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "500KB")
}

func TestQR(t *testing.T) {
	t.Parallel()

	env := newEnv(t, "")
	rec := env.request(http.MethodGet, "/api/qr?data=https%3A%2F%2Fexample.org&size=128", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	rec = env.request(http.MethodGet, "/api/qr", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebsocket(t *testing.T) {
	t.Parallel()

	env := newEnv(t, "")
	ts := httptest.NewServer(env.srv)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	type message struct {
		Type     string          `json:"type"`
		Snapshot json.RawMessage `json:"snapshot"`
		Error    string          `json:"error"`
	}
	readSnapshot := func(state string) {
		for {
			var m message
			require.NoError(t, conn.ReadJSON(&m))
			if m.Type == "snapshot" && strings.Contains(string(m.Snapshot), `"state":"`+state+`"`) {
				return
			}
		}
	}
	readSnapshot("Idle")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "input", "kind": "click"}))
	readSnapshot("Unlocking")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "view", "view": "nowhere"}))
	for {
		var m message
		require.NoError(t, conn.ReadJSON(&m))
		if m.Type == "error" {
			assert.Contains(t, m.Error, "oneof")
			break
		}
	}
}
