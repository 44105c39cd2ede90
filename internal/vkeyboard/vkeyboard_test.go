package vkeyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockWidget struct {
	buffer string
	writes int
}

func (self *mockWidget) SetBuffer(s string) {
	self.buffer = s
	self.writes++
}

func TestOnBufferChange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		raw        string
		expect     string
		expectSeed bool
	}{
		{"plain", "xin chao", "xin chao", false},
		{"digraph", "ddaay", "đây", true},
		{"tone", "Vieejt", "Việt", true},
		{"empty", "", "", false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			w := &mockWidget{buffer: c.raw}
			kb := New(w)
			display := kb.OnBufferChange(c.raw)
			assert.Equal(t, c.expect, display)
			assert.Equal(t, c.expect, kb.Value())
			assert.Equal(t, c.expect, kb.Buffer())
			assert.Equal(t, c.expect, w.buffer)
			if c.expectSeed {
				assert.Equal(t, 1, w.writes)
			} else {
				assert.Equal(t, 0, w.writes)
			}
		})
	}
}

func TestTypingSequence(t *testing.T) {
	t.Parallel()

	w := &mockWidget{}
	kb := New(w)
	// widget appends each key to its (re-seeded) buffer
	for _, key := range "casm own" {
		raw := w.buffer + string(key)
		w.buffer = raw
		kb.OnBufferChange(raw)
	}
	assert.Equal(t, "cám ơn", kb.Value())
	assert.Equal(t, "cám ơn", w.buffer)
}

func TestSpecialKey(t *testing.T) {
	t.Parallel()

	w := &mockWidget{}
	kb := New(w)
	kb.OnBufferChange("Vieejt")
	assert.True(t, kb.OnSpecialKey(KeyEnter))
	assert.Equal(t, "Việt\n", kb.Value())
	assert.Equal(t, "Việt\n", w.buffer)

	assert.True(t, kb.OnSpecialKey(KeyBackspace))
	assert.True(t, kb.OnSpecialKey(KeyBackspace))
	assert.Equal(t, "Việ", kb.Value())
	// multi-byte rune removed whole
	assert.True(t, kb.OnSpecialKey(KeyBackspace))
	assert.Equal(t, "Vi", kb.Value())
	assert.Equal(t, "Vi", w.buffer)

	assert.False(t, kb.OnSpecialKey("shift"))
	assert.Equal(t, "Vi", kb.Value())

	kb.SetValue("")
	assert.True(t, kb.OnSpecialKey(KeyBackspace))
	assert.Equal(t, "", kb.Value())
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	kb := New(nil)
	assert.False(t, kb.Visible())
	assert.True(t, kb.Toggle())
	kb.OnBufferChange("aa")
	assert.Equal(t, State{Value: "â", Buffer: "â", Visible: true}, kb.State())
	assert.False(t, kb.Toggle())
	kb.SetVisible(true)
	kb.Clear()
	assert.Equal(t, State{}, kb.State())
}

func TestSetWidget(t *testing.T) {
	t.Parallel()

	kb := New(nil)
	assert.Equal(t, "â", kb.OnBufferChange("aa"))
	w := &mockWidget{}
	kb.SetWidget(w)
	assert.Equal(t, "â", w.buffer)
	assert.Equal(t, 1, w.writes)
	kb.OnBufferChange("ân")
	assert.Equal(t, 1, w.writes)
	kb.SetWidget(nil)
	assert.True(t, kb.OnSpecialKey(KeyBackspace))
	assert.Equal(t, "â", w.buffer)
	assert.Equal(t, "â", kb.Value())
}
