package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/juju/errors"
	"github.com/labstack/echo/v4"
	"github.com/nbkstem/booth/hardware/text_display"
	"github.com/nbkstem/booth/internal/kiosk"
	"github.com/nbkstem/booth/log2"
)

const (
	clientQueue  = 16
	writeTimeout = 5 * time.Second
)

const (
	msgSnapshot = "snapshot"
	msgMarquee  = "marquee"
	msgError    = "error"
)

type wsMessage struct {
	Type     string          `json:"type"`
	Snapshot *kiosk.Snapshot `json:"snapshot,omitempty"`
	Lines    []string        `json:"lines,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub streams kiosk snapshots and marquee frames to front end pages.
// Slow client loses its connection, never blocks kiosk loop.
type hub struct {
	log      *log2.Log
	upgrader websocket.Upgrader
	handle   func(context.Context, *wsCommand) error

	mu      sync.RWMutex
	clients map[string]*client
	last    []byte
	lastSeq uint64
	closed  bool
}

var _ text_display.Devicer = &hub{}

func newHub(log *log2.Log, handle func(context.Context, *wsCommand) error) *hub {
	return &hub{
		log:    log,
		handle: handle,
		upgrader: websocket.Upgrader{
			// kiosk page is served from the same box, frame overlays may not be
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

func (self *hub) snapshot(s kiosk.Snapshot) {
	b, err := json.Marshal(wsMessage{Type: msgSnapshot, Snapshot: &s})
	if err != nil {
		self.log.Error(errors.Annotate(err, "hub snapshot"))
		return
	}
	self.mu.Lock()
	if self.last != nil && s.Seq <= self.lastSeq {
		self.mu.Unlock()
		return
	}
	self.last, self.lastSeq = b, s.Seq
	self.mu.Unlock()
	self.broadcast(b)
}

// Show implements text_display.Devicer.
func (self *hub) Show(line1, line2 string) {
	b, err := json.Marshal(wsMessage{Type: msgMarquee, Lines: []string{line1, line2}})
	if err != nil {
		self.log.Error(errors.Annotate(err, "hub marquee"))
		return
	}
	self.broadcast(b)
}

func (self *hub) broadcast(b []byte) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	for _, c := range self.clients {
		select {
		case c.send <- b:
		default:
			self.log.Errorf("hub client=%s queue full, dropping", c.id)
			c.conn.Close()
		}
	}
}

func (self *hub) count() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return len(self.clients)
}

func (self *hub) add(c *client) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.closed {
		return false
	}
	self.clients[c.id] = c
	if self.last != nil {
		c.send <- self.last
	}
	return true
}

func (self *hub) remove(c *client) {
	self.mu.Lock()
	if _, ok := self.clients[c.id]; ok {
		delete(self.clients, c.id)
		close(c.send)
	}
	self.mu.Unlock()
}

func (self *hub) close() {
	self.mu.Lock()
	self.closed = true
	for id, c := range self.clients {
		delete(self.clients, id)
		close(c.send)
	}
	self.mu.Unlock()
}

func (self *hub) serve(ctx echo.Context) error {
	conn, err := self.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// upgrader already replied
		self.log.Debugf("hub upgrade err=%v", err)
		return nil
	}
	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, clientQueue),
	}
	if !self.add(c) {
		conn.Close()
		return nil
	}
	self.log.Debugf("hub client=%s connected remote=%s", c.id, ctx.RealIP())
	go self.writeLoop(c)
	self.readLoop(ctx.Request().Context(), c)
	return nil
}

func (self *hub) writeLoop(c *client) {
	defer c.conn.Close()
	for b := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			self.log.Debugf("hub client=%s write err=%v", c.id, err)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
}

func (self *hub) readLoop(ctx context.Context, c *client) {
	defer self.remove(c)
	for {
		var cmd wsCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!strings.Contains(err.Error(), "use of closed network connection") {
				self.log.Debugf("hub client=%s read err=%v", c.id, err)
			}
			return
		}
		if err := self.handle(ctx, &cmd); err != nil {
			self.reply(c, wsMessage{Type: msgError, Error: err.Error()})
		}
	}
}

func (self *hub) reply(c *client, m wsMessage) {
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	self.mu.RLock()
	defer self.mu.RUnlock()
	if _, ok := self.clients[c.id]; !ok {
		return
	}
	select {
	case c.send <- b:
	default:
	}
}

// onCommand runs websocket command same as REST request, new state arrives with next snapshot.
func (self *Server) onCommand(ctx context.Context, cmd *wsCommand) error {
	if err := self.validate.Struct(cmd); err != nil {
		return err
	}
	req := cmd.request()
	if err := self.validate.Struct(req); err != nil {
		return err
	}
	_, err := self.do(ctx, req)
	return err
}
