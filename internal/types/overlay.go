package types

import (
	"encoding/json"
	"strings"

	"github.com/juju/errors"
)

// Overlay is a set of open modal surfaces.
type Overlay uint32

const (
	OverlayKeyboard Overlay = 1 << iota
	OverlayGuestbook
	OverlayWheel
	OverlayFrame // external content
	OverlayVideo // fullscreen video
	OverlayProject

	// Open suppressing overlay stops idle countdown.
	OverlaySuppressing = OverlayKeyboard | OverlayGuestbook | OverlayWheel | OverlayFrame | OverlayVideo
	OverlayAll         = OverlaySuppressing | OverlayProject
)

var overlayNames = []struct {
	o    Overlay
	name string
}{
	{OverlayKeyboard, "keyboard"},
	{OverlayGuestbook, "guestbook"},
	{OverlayWheel, "wheel"},
	{OverlayFrame, "frame"},
	{OverlayVideo, "video"},
	{OverlayProject, "project"},
}

func (o Overlay) Suppressing() bool         { return o&OverlaySuppressing != 0 }
func (o Overlay) Has(x Overlay) bool        { return o&x == x }
func (o Overlay) With(x Overlay) Overlay    { return o | x }
func (o Overlay) Without(x Overlay) Overlay { return o &^ x }

func (o Overlay) Set(x Overlay, open bool) Overlay {
	if open {
		return o.With(x)
	}
	return o.Without(x)
}

func (o Overlay) String() string {
	if o == 0 {
		return "none"
	}
	parts := make([]string, 0, len(overlayNames))
	for _, x := range overlayNames {
		if o.Has(x.o) {
			parts = append(parts, x.name)
		}
	}
	return strings.Join(parts, "|")
}

// Names lists open overlays, stable order.
func (o Overlay) Names() []string {
	names := make([]string, 0, len(overlayNames))
	for _, x := range overlayNames {
		if o.Has(x.o) {
			names = append(names, x.name)
		}
	}
	return names
}

// MarshalJSON encodes open overlays as list of names.
func (o Overlay) MarshalJSON() ([]byte, error) { return json.Marshal(o.Names()) }

// ParseOverlay accepts single overlay name.
func ParseOverlay(s string) (Overlay, error) {
	for _, x := range overlayNames {
		if x.name == s {
			return x.o, nil
		}
	}
	return 0, errors.NotValidf("overlay=%q", s)
}
