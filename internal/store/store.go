// Package store keeps guestbook, wheel and dashboard records locally first,
// optionally mirrored to a remote script endpoint.
package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/helpers"
	"github.com/nbkstem/booth/internal/persist"
	"github.com/nbkstem/booth/log2"
)

const (
	DefaultTimeout       = 60 * time.Second
	DefaultAttachmentMax = 500 * 1024
	persistTag           = "store"
	remoteContentType    = "text/plain;charset=utf-8"
)

// ErrAttachmentTooLarge text is shown to visitors as is.
var ErrAttachmentTooLarge = errors.New("Chưa cấu hình Server: Chỉ cho phép file < 500KB.")

var ErrRemoteDisabled = errors.New("remote script url is not configured")

type Config struct {
	PersistRoot   string
	Persist       bool
	ScriptURL     string
	Timeout       time.Duration
	AttachmentMax int
	RetryMin      time.Duration
	RetryMax      time.Duration
}

type Store struct {
	config  Config
	log     *log2.Log
	client  *http.Client
	persist persist.Persist

	mu      sync.Mutex
	data    map[string]json.RawMessage
	pending map[string]struct{}

	retry helpers.Backoff
	kick  chan struct{}
}

func New(config Config, client *http.Client, log *log2.Log) *Store {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.AttachmentMax <= 0 {
		config.AttachmentMax = DefaultAttachmentMax
	}
	if config.RetryMin <= 0 {
		config.RetryMin = time.Second
	}
	if config.RetryMax <= 0 {
		config.RetryMax = 5 * time.Minute
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Store{
		config:  config,
		log:     log,
		client:  client,
		data:    make(map[string]json.RawMessage),
		pending: make(map[string]struct{}),
		retry:   helpers.Backoff{Min: config.RetryMin, Max: config.RetryMax, K: 2},
		kick:    make(chan struct{}, 1),
	}
}

// Init loads local snapshot. Missing storage is not an error.
func (self *Store) Init() error {
	if err := self.persist.Init(persistTag, self, self.config.PersistRoot, self.config.Persist, self.log); err != nil {
		return errors.Annotate(err, "store init")
	}
	return self.persist.Load()
}

func (self *Store) Remote() bool { return self.config.ScriptURL != "" }

func (self *Store) MarshalBinary() ([]byte, error) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return json.Marshal(self.data)
}

func (self *Store) UnmarshalBinary(b []byte) error {
	m := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &m); err != nil {
		return errors.Annotate(err, "store decode")
	}
	self.mu.Lock()
	self.data = m
	self.mu.Unlock()
	return nil
}

func (self *Store) Get(key string) (json.RawMessage, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	v, ok := self.data[key]
	return v, ok
}

func (self *Store) Keys() []string {
	self.mu.Lock()
	keys := make([]string, 0, len(self.data))
	for k := range self.data {
		keys = append(keys, k)
	}
	self.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Put writes locally first. Remote failure is logged and retried later,
// local write stands. Error is returned only when local write failed.
func (self *Store) Put(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return errors.NotValidf("store key=empty")
	}
	if !json.Valid(value) {
		return errors.NotValidf("store key=%s value is not JSON", key)
	}
	self.mu.Lock()
	self.data[key] = append(json.RawMessage(nil), value...)
	self.mu.Unlock()
	if err := self.persist.Store(); err != nil {
		return err
	}

	if !self.Remote() {
		return nil
	}
	if err := self.push(ctx, key); err != nil {
		self.log.Error(errors.Annotatef(err, "store remote put key=%s, will retry", key))
		self.markPending(key)
	}
	return nil
}

// Pull refreshes key from remote and stores it locally.
func (self *Store) Pull(ctx context.Context, key string) (json.RawMessage, error) {
	if !self.Remote() {
		return nil, ErrRemoteDisabled
	}
	var resp struct {
		Value json.RawMessage `json:"value"`
	}
	if err := self.callScript(ctx, "GET", map[string]interface{}{"key": key}, &resp); err != nil {
		return nil, errors.Annotatef(err, "store pull key=%s", key)
	}
	if len(resp.Value) == 0 || string(resp.Value) == "null" {
		return nil, errors.NotFoundf("store remote key=%s", key)
	}
	self.mu.Lock()
	self.data[key] = resp.Value
	self.mu.Unlock()
	return resp.Value, self.persist.Store()
}

// Attach returns URL usable in <img src>. Without remote, payload is
// inlined as data URL and limited by attachment ceiling.
func (self *Store) Attach(ctx context.Context, name, mime string, data []byte) (string, error) {
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if !self.Remote() {
		if len(data) > self.config.AttachmentMax {
			return "", ErrAttachmentTooLarge
		}
		return "data:" + mime + ";base64," + encoded, nil
	}

	var resp struct {
		URL string `json:"url"`
	}
	err := self.callScript(ctx, "UPLOAD", map[string]interface{}{
		"filename": name,
		"mimeType": mime,
		"base64":   encoded,
	}, &resp)
	if err != nil {
		return "", errors.Annotatef(err, "store upload name=%s", name)
	}
	if resp.URL == "" {
		return "", errors.Errorf("store upload name=%s response without url", name)
	}
	return resp.URL, nil
}

func (self *Store) Pending() []string {
	self.mu.Lock()
	keys := make([]string, 0, len(self.pending))
	for k := range self.pending {
		keys = append(keys, k)
	}
	self.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Run retries failed remote writes until stop.
func (self *Store) Run(ctx context.Context, stop <-chan struct{}) {
	for {
		select {
		case <-self.kick:
		case <-stop:
			return
		}
		for {
			delay := self.retry.DelayBefore()
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-stop:
					return
				}
			}
			ok := self.Flush(ctx)
			self.retry.Update(ok)
			if ok {
				break
			}
		}
	}
}

// Flush pushes every pending key once. Returns true when nothing is left.
func (self *Store) Flush(ctx context.Context) bool {
	for _, key := range self.Pending() {
		if err := self.push(ctx, key); err != nil {
			self.log.Debugf("store retry key=%s err=%v", key, err)
			continue
		}
		self.mu.Lock()
		delete(self.pending, key)
		self.mu.Unlock()
	}
	return len(self.Pending()) == 0
}

func (self *Store) markPending(key string) {
	self.mu.Lock()
	self.pending[key] = struct{}{}
	self.mu.Unlock()
	select {
	case self.kick <- struct{}{}:
	default:
	}
}

func (self *Store) push(ctx context.Context, key string) error {
	value, ok := self.Get(key)
	if !ok {
		return nil
	}
	return self.callScript(ctx, "PUT", map[string]interface{}{"key": key, "value": value}, nil)
}

func (self *Store) callScript(ctx context.Context, action string, payload map[string]interface{}, out interface{}) error {
	body := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["action"] = action
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Annotate(err, "encode")
	}

	ctx, cancel := context.WithTimeout(ctx, self.config.Timeout)
	defer cancel()
	req, err := http.NewRequest(http.MethodPost, self.config.ScriptURL, bytes.NewReader(b))
	if err != nil {
		return errors.Trace(err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", remoteContentType)
	resp, err := self.client.Do(req)
	if err != nil {
		return errors.Annotatef(err, "action=%s", action)
	}
	defer resp.Body.Close()
	text, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Annotatef(err, "action=%s read", action)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusForbidden || bytes.Contains(text, []byte("You do not have permission")) {
			return errors.Unauthorizedf("action=%s permission denied (403), check script deployment access", action)
		}
		return errors.Errorf("action=%s http status=%d", action, resp.StatusCode)
	}

	var envelope struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(text, &envelope); err != nil {
		return errors.Errorf("action=%s response is not JSON (HTML error page?) body=%s", action, clip(string(text), 80))
	}
	if envelope.Status == "error" {
		return errors.Errorf("action=%s remote error: %s", action, envelope.Error)
	}
	if out != nil {
		if err := json.Unmarshal(text, out); err != nil {
			return errors.Annotatef(err, "action=%s decode", action)
		}
	}
	return nil
}

func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > n {
		return string(r[:n]) + "..."
	}
	return s
}

func (self *Store) String() string {
	return fmt.Sprintf("store remote=%t keys=%d pending=%d", self.Remote(), len(self.Keys()), len(self.Pending()))
}
