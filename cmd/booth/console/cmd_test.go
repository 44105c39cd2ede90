package console

import (
	"testing"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line   string
		expect string
		err    bool
	}{
		{"tap", "Event(Input source=console kind=touch key=0 up=false)", false},
		{"move", "Event(Input source=console kind=pointermove key=0 up=false)", false},
		{"view gallery", "Event(View view=gallery)", false},
		{"open wheel", "Event(Overlay overlay=wheel open=true)", false},
		{"close frame", "Event(Overlay overlay=frame open=false)", false},
		{"kb xin  chafo", `Event(Keyboard op=Buffer text="xin  chafo")`, false},
		{"key backspace", `Event(Keyboard op=Key text="backspace")`, false},
		{"report video codec", "Event(Report subject=video err=codec)", false},
		{"reset", "Event(Reset)", false},
		{"wake", "Event(Wake)", false},
		{"view settings", "", true},
		{"report", "", true},
		{"vend 3", "", true},
		{"   ", "", true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.line, func(t *testing.T) {
			e, err := ParseLine(c.line)
			if c.err {
				require.Error(t, err)
				assert.True(t, errors.IsNotValid(err), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expect, e.String())
			assert.NotEqual(t, types.EventInvalid, e.Kind)
		})
	}
}
