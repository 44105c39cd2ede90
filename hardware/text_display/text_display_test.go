package text_display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	const width uint32 = 16
	spaces := []rune(strings.Repeat(" ", MaxWidth*2))
	canonical := func(input []rune, tick uint32) string {
		gap := width / 2
		length := uint32(len(input))
		if length <= width {
			return string(append(append([]rune(nil), input...), spaces...)[:width])
		}
		help := append(append(append([]rune(nil), input...), spaces[:gap]...), input...)
		offset := tick % (length + gap)
		return string(help[offset : offset+width])
	}

	cases := []struct {
		name  string
		input string
	}{
		{"short", "Chạm để bắt đầu"},
		{"full", "gian hàng số 40!"},
		{"long1", "Trường THCS Nguyễn Bỉnh Khiêm"},
		{"long2", "Chào mừng bạn đến với gian hàng số 40 của chúng tôi"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			input := []rune(c.input)
			for tick := uint32(0); tick < uint32(len(input)*3); tick++ {
				var buf [width]rune
				n := scrollWrap(buf[:], input, tick)
				require.True(t, n <= width)
				expect := canonical(input, tick)
				assert.Equal(t, expect, string(buf[:]), "tick=%d", tick)
			}
		})
	}
}

func TestSetLines(t *testing.T) {
	t.Parallel()

	d := NewMockTextDisplay(&TextDisplayConfig{Width: 8})
	ch := make(chan State, 1)
	d.SetUpdateChan(ch)
	d.SetLines("Xin chào", "nhập\x00")
	assert.Equal(t, "Xin chào\nnhập", (<-ch).String())
	l1, l2 := d.dev.(*MockDevicer).Last()
	assert.Equal(t, "Xin chào", l1)
	assert.Equal(t, "nhập", l2)

	d.Message("đợi", "…", func() {
		assert.Equal(t, "đợi     \n…       ", (<-ch).String())
	})
	assert.Equal(t, "Xin chào\nnhập", (<-ch).String())

	d.Clear()
	assert.Equal(t, "\n", (<-ch).String())
}

func TestJustCenter(t *testing.T) {
	t.Parallel()

	d, err := NewTextDisplay(&TextDisplayConfig{Width: 8})
	require.NoError(t, err)
	assert.Equal(t, "longlong", string(d.JustCenter([]rune("longlong"))))
	assert.Equal(t, "  Việt  ", string(d.JustCenter([]rune("Việt"))))
	assert.Equal(t, "   ơ    ", string(d.JustCenter([]rune("ơ"))))
	assert.Equal(t, "        ", string(d.JustCenter(nil)))
}

func TestNewTextDisplayWidth(t *testing.T) {
	t.Parallel()

	_, err := NewTextDisplay(&TextDisplayConfig{Width: 0})
	assert.Error(t, err)
	_, err = NewTextDisplay(&TextDisplayConfig{Width: MaxWidth + 1})
	assert.Error(t, err)
}
