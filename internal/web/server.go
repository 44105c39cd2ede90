// Package web serves kiosk front end: REST API, websocket snapshot stream,
// static files and media.
package web

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nbkstem/booth/internal/chat"
	"github.com/nbkstem/booth/internal/kiosk"
	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/internal/store"
	"github.com/nbkstem/booth/log2"
)

const (
	shutdownTimeout = 5 * time.Second
	doTimeout       = 5 * time.Second
)

type Server struct {
	g        *state.Global
	k        *kiosk.Kiosk
	chat     *chat.Client
	store    *store.Store
	app      *echo.Echo
	hub      *hub
	validate *validator.Validate
}

// New builds server around initialized kiosk. Marquee frames go to websocket clients from now on.
func New(ctx context.Context, k *kiosk.Kiosk) (*Server, error) {
	g := state.GetGlobal(ctx)
	st, err := g.Store()
	if err != nil {
		return nil, errors.Annotate(err, "web")
	}
	self := &Server{
		g:        g,
		k:        k,
		chat:     g.Chat(),
		store:    st,
		app:      echo.New(),
		validate: newValidator(),
	}
	self.hub = newHub(g.Log, self.onCommand)
	self.setup()

	self.hub.snapshot(k.Snapshot())
	k.Subscribe("web", self.hub.snapshot)
	if d, err := g.TextDisplay(); err == nil && d != nil {
		d.SetDevice(self.hub)
	}
	return self, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" {
			tag = fld.Tag.Get("query")
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (self *Server) setup() {
	self.app.HideBanner = true
	self.app.HidePort = true
	self.app.Pre(middleware.RemoveTrailingSlash())
	if self.g.Config.Web.LogRequests {
		self.app.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "web ${method} ${uri} status=${status} latency=${latency_human}\n",
			Output: logWriter{self.g.Log},
		}))
	}
	self.app.Use(middleware.Recover())
	self.app.HTTPErrorHandler = newHTTPErrorHandler(self.g.Log)
	self.app.Validator = self

	api := self.app.Group("/api")
	api.GET("/state", self.getState)
	api.POST("/input", self.postEvent(func() eventer { return &inputRequest{} }))
	api.POST("/overlay", self.postEvent(func() eventer { return &overlayRequest{} }))
	api.POST("/view", self.postEvent(func() eventer { return &viewRequest{} }))
	api.POST("/keyboard/toggle", self.postEvent(func() eventer { return &toggleRequest{} }))
	api.POST("/keyboard/buffer", self.postEvent(func() eventer { return &bufferRequest{} }))
	api.POST("/keyboard/key", self.postEvent(func() eventer { return &keyRequest{} }))
	api.POST("/report", self.postEvent(func() eventer { return &reportRequest{} }))
	api.POST("/telex", self.postTelex)
	api.POST("/chat", self.postChat)
	api.GET("/store/:key", self.getStore)
	api.PUT("/store/:key", self.putStore)
	api.POST("/attach", self.postAttach)
	api.GET("/qr", self.getQR)

	self.app.GET("/ws", self.hub.serve)

	if root := self.g.Config.Media.Root; root != "" {
		self.app.Static("/media", root)
	}
	if dir := self.g.Config.Web.StaticDir; dir != "" {
		self.app.Static("/", dir)
	}
}

// Validate implements echo.Validator.
func (self *Server) Validate(i interface{}) error { return self.validate.Struct(i) }

// Start listens until Stop or global stop.
func (self *Server) Start(ctx context.Context) {
	addr := self.g.Config.WebListen()
	if !self.g.Alive.Add(1) {
		return
	}
	go func() {
		defer self.g.Alive.Done()
		self.g.Log.Infof("web listen=%s", addr)
		err := self.app.Start(addr)
		if err != nil && err != http.ErrServerClosed {
			self.g.Error(errors.Annotatef(err, "web listen=%s", addr))
			self.g.Stop()
		}
	}()
	go func() {
		<-self.g.Alive.StopChan()
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := self.Stop(ctx); err != nil {
			self.g.Log.Errorf("web shutdown err=%v", err)
		}
	}()
}

func (self *Server) Stop(ctx context.Context) error {
	self.k.Unsubscribe("web")
	self.hub.close()
	return self.app.Shutdown(ctx)
}

func (self *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	self.app.ServeHTTP(w, r)
}

// logWriter adapts log2 for echo middleware output.
type logWriter struct{ log *log2.Log }

func (self logWriter) Write(b []byte) (int, error) {
	self.log.Info(strings.TrimRight(string(b), "\n"))
	return len(b), nil
}
