package subcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	mods := []Mod{{Name: "kiosk", Usage: "run booth"}, {Name: "telex", Usage: "transliterate stdin"}}
	m, err := Parse("telex", mods)
	require.NoError(t, err)
	assert.Equal(t, "telex", m.Name)

	_, err = Parse("", mods)
	assert.EqualError(t, err, "empty command")
	_, err = Parse("vend", mods)
	assert.EqualError(t, err, "unknown command='vend'")

	assert.Contains(t, Usage(mods), "kiosk")
	assert.Panics(t, func() { _, _ = Parse("x", []Mod{{}}) })
}
