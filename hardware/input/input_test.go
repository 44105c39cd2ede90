package input

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"
	"unsafe"

	"github.com/nbkstem/booth/internal/types"
	"github.com/nbkstem/booth/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/inputevent-go"
)

func TestDispatchDoubleSubscribe(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	dstop := make(chan struct{})
	d := NewDispatch(log, dstop)

	go func() {
		sub1stop := make(chan struct{})
		d.SubscribeChan("kiosk", sub1stop)
		close(sub1stop)
		sub2stop := make(chan struct{})
		d.SubscribeChan("kiosk", sub2stop)
		close(dstop)
	}()

	d.Run(nil)
}

func TestDispatchFunc(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	dstop := make(chan struct{})
	d := NewDispatch(log, dstop)
	got := make(chan types.InputEvent, 1)
	d.SubscribeFunc("kiosk", func(e types.InputEvent) { got <- e }, dstop)
	go d.Run(nil)

	d.Emit(types.InputEvent{Source: "test", Kind: types.InputTouch})
	e := <-got
	assert.Equal(t, types.InputTouch, e.Kind)
	close(dstop)
}

func TestDispatchActivity(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	dstop := make(chan struct{})
	defer close(dstop)
	d := NewDispatch(log, dstop)
	ch := d.SubscribeChan("marquee", dstop)
	go d.Run(nil)

	d.Emit(types.InputEvent{Source: DevInputEventTag, Kind: types.InputKey, Key: 30})
	e := <-ch
	assert.Equal(t, DevInputEventTag, e.Source)
	assert.Equal(t, types.InputKey, e.Kind)
	assert.Equal(t, uint16(30), e.Key)

	d.Unsubscribe("marquee")
	_, ok := <-ch
	assert.False(t, ok)
	assert.Panics(t, func() { d.Unsubscribe("marquee") })
}

func encode(events ...inputevent.InputEvent) []byte {
	buf := bytes.NewBuffer(nil)
	for _, e := range events {
		e := e
		b := (*[inputevent.EventSizeof]byte)(unsafe.Pointer(&e))
		buf.Write(b[:])
	}
	return buf.Bytes()
}

func TestDevInputEventRead(t *testing.T) {
	t.Parallel()

	stream := encode(
		inputevent.InputEvent{Type: 0, Code: 0, Value: 0}, // EV_SYN skipped
		inputevent.InputEvent{Type: evKey, Code: btnTouch, Value: int32(inputevent.KeyStateDown)},
		inputevent.InputEvent{Type: evAbs, Code: 0, Value: 310},
		inputevent.InputEvent{Type: evKey, Code: 30, Value: int32(inputevent.KeyStateHold)}, // skipped
		inputevent.InputEvent{Type: evKey, Code: 30, Value: int32(inputevent.KeyStateUp)},
		inputevent.InputEvent{Type: evRel, Code: relWheel, Value: -1},
	)
	src := NewDevInputEventReader(ioutil.NopCloser(bytes.NewReader(stream)))
	expect := []types.InputEvent{
		{Source: DevInputEventTag, Kind: types.InputTouch, Key: btnTouch},
		{Source: DevInputEventTag, Kind: types.InputPointerMove},
		{Source: DevInputEventTag, Kind: types.InputKey, Key: 30, Up: true},
		{Source: DevInputEventTag, Kind: types.InputWheel, Key: relWheel},
	}
	for i, ex := range expect {
		e, err := src.Read()
		require.NoError(t, err, "i=%d", i)
		assert.Equal(t, ex, e, "i=%d", i)
	}
	assert.True(t, expect[0].IsTap())
	_, err := src.Read()
	assert.Equal(t, io.EOF, err)
}
