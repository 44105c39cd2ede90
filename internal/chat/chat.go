// Package chat asks the booth AI guide collaborator. Every failure
// becomes a calm Vietnamese message, callers never see technical errors.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/log2"
)

const (
	DefaultTimeout = 30 * time.Second

	DefaultMsgStatus  = "Xin lỗi, hiện tôi đang gặp lỗi khi kết nối tới AI. Bạn vui lòng thử lại sau nhé."
	DefaultMsgError   = "Xin lỗi, đã xảy ra lỗi khi xử lý yêu cầu. Bạn thử hỏi lại theo cách khác giúp tôi nhé."
	DefaultMsgEmpty   = "Xin lỗi, tôi không nhận được câu trả lời từ AI."
	DefaultMsgNetwork = "Xin lỗi, có lỗi kết nối khi gọi tới AI. Bạn kiểm tra lại mạng hoặc thử lại sau nhé."

	maxResponseSize = 1 << 20
)

type Config struct {
	Endpoint   string
	Timeout    time.Duration
	Preface    string
	MsgStatus  string
	MsgError   string
	MsgEmpty   string
	MsgNetwork string
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MsgStatus == "" {
		c.MsgStatus = DefaultMsgStatus
	}
	if c.MsgError == "" {
		c.MsgError = DefaultMsgError
	}
	if c.MsgEmpty == "" {
		c.MsgEmpty = DefaultMsgEmpty
	}
	if c.MsgNetwork == "" {
		c.MsgNetwork = DefaultMsgNetwork
	}
}

type Client struct {
	config Config
	http   *http.Client
	log    *log2.Log
}

type request struct {
	Prompt string `json:"prompt"`
}

type response struct {
	Text  *string         `json:"text"`
	Error json.RawMessage `json:"error"`
}

func New(config Config, client *http.Client, log *log2.Log) *Client {
	config.applyDefaults()
	if client == nil {
		client = &http.Client{}
	}
	return &Client{config: config, http: client, log: log}
}

// Ask never fails, collaborator errors are logged and replaced with fallback message.
func (self *Client) Ask(ctx context.Context, prompt string) string {
	text, err := self.Query(ctx, prompt)
	if err != nil {
		self.log.Error(errors.Annotate(err, "chat"))
	}
	return text
}

// Query returns fallback text together with underlying error.
func (self *Client) Query(ctx context.Context, prompt string) (string, error) {
	if self.config.Endpoint == "" {
		return self.config.MsgNetwork, errors.New("endpoint is not configured")
	}
	full := prompt
	if self.config.Preface != "" {
		full = self.config.Preface + "\n\n" + prompt
	}
	body, err := json.Marshal(request{Prompt: full})
	if err != nil {
		return self.config.MsgNetwork, errors.Trace(err)
	}

	ctx, cancel := context.WithTimeout(ctx, self.config.Timeout)
	defer cancel()
	req, err := http.NewRequest(http.MethodPost, self.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return self.config.MsgNetwork, errors.Trace(err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	resp, err := self.http.Do(req)
	if err != nil {
		return self.config.MsgNetwork, errors.Annotate(err, "request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return self.config.MsgStatus, errors.Errorf("status=%d", resp.StatusCode)
	}
	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return self.config.MsgNetwork, errors.Annotate(err, "read")
	}
	var r response
	if err := json.Unmarshal(b, &r); err != nil {
		return self.config.MsgNetwork, errors.Annotate(err, "decode")
	}
	if r.Text != nil && strings.TrimSpace(*r.Text) != "" {
		return *r.Text, nil
	}
	if len(r.Error) != 0 && string(r.Error) != "null" {
		return self.config.MsgError, errors.Errorf("remote error=%s", r.Error)
	}
	return self.config.MsgEmpty, errors.New("empty response")
}
