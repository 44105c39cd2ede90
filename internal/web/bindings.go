package web

import (
	"encoding/base64"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
)

// SourceWeb tags input forwarded by browser front end.
const SourceWeb = "web"

type eventer interface {
	event() (types.Event, error)
}

type inputRequest struct {
	Kind string `json:"kind" validate:"required,oneof=pointerdown pointermove click touch key scroll wheel"`
}

func (self *inputRequest) event() (types.Event, error) {
	kind, err := types.ParseInputKind(self.Kind)
	if err != nil {
		return types.Event{}, err
	}
	return types.Event{Kind: types.EventInput, Input: types.InputEvent{Source: SourceWeb, Kind: kind}}, nil
}

type overlayRequest struct {
	Overlay string `json:"overlay" validate:"required,oneof=keyboard guestbook wheel frame video project"`
	Open    *bool  `json:"open" validate:"required"`
}

func (self *overlayRequest) event() (types.Event, error) {
	o, err := types.ParseOverlay(self.Overlay)
	if err != nil {
		return types.Event{}, err
	}
	return types.Event{Kind: types.EventOverlay, Overlay: o, Open: *self.Open}, nil
}

type viewRequest struct {
	View string `json:"view" validate:"required,oneof=home gallery schedule ai_guide about"`
}

func (self *viewRequest) event() (types.Event, error) {
	v, err := types.ParseView(self.View)
	if err != nil {
		return types.Event{}, err
	}
	return types.Event{Kind: types.EventView, View: v}, nil
}

type toggleRequest struct{}

func (self *toggleRequest) event() (types.Event, error) {
	return types.Event{Kind: types.EventKeyboard, KeyOp: types.KeyboardToggle}, nil
}

type bufferRequest struct {
	Raw string `json:"raw" validate:"max=4096"`
}

func (self *bufferRequest) event() (types.Event, error) {
	return types.Event{Kind: types.EventKeyboard, KeyOp: types.KeyboardBuffer, Text: self.Raw}, nil
}

// Unknown key names pass validation, keyboard ignores them.
type keyRequest struct {
	Key string `json:"key" validate:"required,max=32"`
}

func (self *keyRequest) event() (types.Event, error) {
	return types.Event{Kind: types.EventKeyboard, KeyOp: types.KeyboardKey, Text: self.Key}, nil
}

type reportRequest struct {
	Subject string `json:"subject" validate:"required,oneof=audio fullscreen video"`
	Error   string `json:"error" validate:"max=1024"`
}

func (self *reportRequest) event() (types.Event, error) {
	msg := self.Error
	if msg == "" {
		msg = "unspecified"
	}
	return types.Event{Kind: types.EventReport, Text: self.Subject, Err: errors.New(msg)}, nil
}

type telexRequest struct {
	Raw string `json:"raw" validate:"max=4096"`
}

type textResponse struct {
	Text string `json:"text"`
}

type chatRequest struct {
	Prompt string `json:"prompt" validate:"required,max=4000"`
}

type attachRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	MimeType string `json:"mimeType" validate:"required,max=255"`
	Data     string `json:"data" validate:"required,base64"`
}

func (self *attachRequest) decode() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(self.Data)
	return b, errors.Annotate(err, "attach data")
}

type urlResponse struct {
	URL string `json:"url"`
}

type qrRequest struct {
	Data string `query:"data" validate:"required,max=1024"`
	Size int    `query:"size" validate:"omitempty,min=64,max=1024"`
}

// wsCommand is any REST request body with type discriminator.
type wsCommand struct {
	Type    string `json:"type" validate:"required,oneof=input overlay view toggle buffer key report"`
	Kind    string `json:"kind"`
	Overlay string `json:"overlay"`
	Open    *bool  `json:"open"`
	View    string `json:"view"`
	Raw     string `json:"raw"`
	Key     string `json:"key"`
	Subject string `json:"subject"`
	Error   string `json:"error"`
}

func (self *wsCommand) request() eventer {
	switch self.Type {
	case "input":
		return &inputRequest{Kind: self.Kind}
	case "overlay":
		return &overlayRequest{Overlay: self.Overlay, Open: self.Open}
	case "view":
		return &viewRequest{View: self.View}
	case "toggle":
		return &toggleRequest{}
	case "buffer":
		return &bufferRequest{Raw: self.Raw}
	case "key":
		return &keyRequest{Key: self.Key}
	case "report":
		return &reportRequest{Subject: self.Subject, Error: self.Error}
	}
	return nil
}
