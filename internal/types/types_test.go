package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlay(t *testing.T) {
	t.Parallel()

	var o Overlay
	assert.False(t, o.Suppressing())
	assert.Equal(t, "none", o.String())

	o = o.Set(OverlayProject, true)
	assert.False(t, o.Suppressing(), "project detail does not stop idle countdown")

	o = o.Set(OverlayKeyboard, true).Set(OverlayVideo, true)
	assert.True(t, o.Suppressing())
	assert.Equal(t, "keyboard|video|project", o.String())
	assert.Equal(t, []string{"keyboard", "video", "project"}, o.Names())

	o = o.Set(OverlayKeyboard, false)
	assert.True(t, o.Suppressing())
	o = o.Without(OverlayVideo)
	assert.False(t, o.Suppressing())
	assert.True(t, o.Has(OverlayProject))
}

func TestParse(t *testing.T) {
	t.Parallel()

	o, err := ParseOverlay("guestbook")
	require.NoError(t, err)
	assert.Equal(t, OverlayGuestbook, o)
	_, err = ParseOverlay("keyboard|video")
	assert.Error(t, err)

	v, err := ParseView("ai_guide")
	require.NoError(t, err)
	assert.Equal(t, ViewAIGuide, v)
	_, err = ParseView("settings")
	assert.Error(t, err)

	k, err := ParseInputKind("wheel")
	require.NoError(t, err)
	assert.Equal(t, InputWheel, k)
	_, err = ParseInputKind("invalid")
	assert.Error(t, err)
}

func TestInputTap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		e      InputEvent
		expect bool
	}{
		{InputEvent{Kind: InputPointerDown}, true},
		{InputEvent{Kind: InputClick}, true},
		{InputEvent{Kind: InputTouch}, true},
		{InputEvent{Kind: InputTouch, Up: true}, false},
		{InputEvent{Kind: InputPointerMove}, false},
		{InputEvent{Kind: InputKey}, false},
		{InputEvent{Kind: InputWheel}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, c.e.IsTap(), c.e.Kind.String())
	}
}

func TestEventString(t *testing.T) {
	t.Parallel()

	e := Event{Kind: EventOverlay, Overlay: OverlayWheel, Open: true}
	assert.Equal(t, "Event(Overlay overlay=wheel open=true)", e.String())
	e = Event{Kind: EventKeyboard, KeyOp: KeyboardKey, Text: "enter"}
	assert.Equal(t, `Event(Keyboard op=Key text="enter")`, e.String())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		View     View    `json:"view"`
		Overlays Overlay `json:"overlays"`
		None     Overlay `json:"none"`
	}{ViewAIGuide, OverlayKeyboard | OverlayFrame, 0})
	require.NoError(t, err)
	assert.Equal(t, `{"view":"ai_guide","overlays":["keyboard","frame"],"none":[]}`, string(b))
}
