package types

import "github.com/juju/errors"

type View uint8

const (
	ViewHome View = iota
	ViewGallery
	ViewSchedule
	ViewAIGuide
	ViewAbout
)

var viewNames = [...]string{"home", "gallery", "schedule", "ai_guide", "about"}

func (v View) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "home"
}

func (v View) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if name == s {
			return View(i), nil
		}
	}
	return ViewHome, errors.NotValidf("view=%q", s)
}
