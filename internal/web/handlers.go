package web

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/juju/errors"
	"github.com/labstack/echo/v4"
	"github.com/nbkstem/booth/internal/telex"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 256
	maxStoreValue = 1 << 20
)

func (self *Server) bindValid(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

func (self *Server) getState(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, self.k.Snapshot())
}

// postEvent handles any request convertible to kiosk event, replies with snapshot after it.
func (self *Server) postEvent(newReq func() eventer) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := newReq()
		if err := self.bindValid(ctx, req); err != nil {
			return err
		}
		s, err := self.do(ctx.Request().Context(), req)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, s)
	}
}

func (self *Server) do(ctx context.Context, req eventer) (interface{}, error) {
	e, err := req.event()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, doTimeout)
	defer cancel()
	s, err := self.k.Do(ctx, e)
	return s, errors.Annotatef(err, "kiosk do %s", e.String())
}

func (self *Server) postTelex(ctx echo.Context) error {
	req := &telexRequest{}
	if err := self.bindValid(ctx, req); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, textResponse{Text: telex.Transliterate(req.Raw)})
}

// postChat always answers 200, failures are friendly text.
func (self *Server) postChat(ctx echo.Context) error {
	req := &chatRequest{}
	if err := self.bindValid(ctx, req); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, textResponse{Text: self.chat.Ask(ctx.Request().Context(), req.Prompt)})
}

func (self *Server) getStore(ctx echo.Context) error {
	key := ctx.Param("key")
	if ctx.QueryParam("pull") == "1" {
		v, err := self.store.Pull(ctx.Request().Context(), key)
		if err != nil {
			return err
		}
		return ctx.JSONBlob(http.StatusOK, v)
	}
	v, ok := self.store.Get(key)
	if !ok {
		return errors.NotFoundf("store key=%s", key)
	}
	return ctx.JSONBlob(http.StatusOK, v)
}

func (self *Server) putStore(ctx echo.Context) error {
	key := ctx.Param("key")
	b, err := ioutil.ReadAll(http.MaxBytesReader(ctx.Response(), ctx.Request().Body, maxStoreValue))
	if err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	}
	if !json.Valid(b) {
		return errors.NotValidf("store key=%s value json", key)
	}
	if err := self.store.Put(ctx.Request().Context(), key, json.RawMessage(b)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (self *Server) postAttach(ctx echo.Context) error {
	req := &attachRequest{}
	if err := self.bindValid(ctx, req); err != nil {
		return err
	}
	data, err := req.decode()
	if err != nil {
		return errors.NewNotValid(err, "")
	}
	url, err := self.store.Attach(ctx.Request().Context(), req.Name, req.MimeType, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, urlResponse{URL: url})
}

// getQR renders PNG, e.g. link to visitor's guestbook photo.
func (self *Server) getQR(ctx echo.Context) error {
	req := &qrRequest{}
	if err := self.bindValid(ctx, req); err != nil {
		return err
	}
	size := req.Size
	if size == 0 {
		size = defaultQRSize
	}
	png, err := qrcode.Encode(req.Data, qrcode.High, size)
	if err != nil {
		return errors.Annotate(err, "qrcode")
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}
