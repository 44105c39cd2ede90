package media

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nbkstem/booth/log2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsScan(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	root := t.TempDir()
	a := NewAssets(root, []string{"intro.mp4", "welcome.mp3", ""}, log)
	assert.Equal(t, []string{"intro.mp4", "welcome.mp3"}, a.Names())
	assert.False(t, a.Available("intro.mp4"))
	assert.False(t, a.Available("unknown"))

	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "intro.mp4"), []byte("x"), 0644))
	assert.True(t, a.Scan())
	assert.True(t, a.Available("intro.mp4"))
	assert.False(t, a.Scan())

	require.NoError(t, os.Remove(filepath.Join(root, "intro.mp4")))
	assert.True(t, a.Scan())
	assert.False(t, a.Available("intro.mp4"))
	assert.Equal(t, "/abs/x.mp3", a.Path("/abs/x.mp3"))
}

func TestAssetsWatch(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	root := t.TempDir()
	a := NewAssets(root, []string{"intro.mp4"}, log)
	changed := make(chan struct{}, 4)
	a.SetOnChange(func() { changed <- struct{}{} })
	stop := make(chan struct{})
	defer close(stop)
	require.NoError(t, a.Watch(stop))

	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "intro.mp4"), []byte("x"), 0644))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for asset change")
	}
	assert.True(t, a.Available("intro.mp4"))
}

type runRecord struct {
	calls [][]string
	fail  map[string]error
}

func (self *runRecord) run(ctx context.Context, argv []string) error {
	self.calls = append(self.calls, argv)
	return self.fail[argv[0]]
}

func TestCuePlay(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "welcome.mp3"), []byte("id3"), 0644))

	cases := []struct {
		name   string
		audio  string
		fail   map[string]error
		expect string
		calls  int
	}{
		{"audio", "welcome.mp3", nil, CueAudio, 1},
		{"audio-missing", "nope.mp3", nil, CueSpeech, 1},
		{"audio-fail", "welcome.mp3", map[string]error{"mpv": fmt.Errorf("no sound card")}, CueSpeech, 2},
		{"all-fail", "welcome.mp3", map[string]error{"mpv": fmt.Errorf("x"), "espeak-ng": fmt.Errorf("y")}, CueSilence, 2},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			log := log2.NewTest(t, log2.LDebug)
			assets := NewAssets(root, []string{c.audio}, log)
			rec := &runRecord{fail: c.fail}
			cue := NewCue(CueConfig{
				Audio:         c.audio,
				Text:          "Xin chào",
				AudioPlayer:   []string{"mpv", "--no-video"},
				SpeechCommand: []string{"espeak-ng", "-v", "vi", "{}"},
			}, assets, rec.run, log)
			assert.Equal(t, c.expect, cue.Play(context.Background()))
			assert.Len(t, rec.calls, c.calls)
			if c.expect == CueAudio {
				assert.Equal(t, []string{"mpv", "--no-video", filepath.Join(root, "welcome.mp3")}, rec.calls[0])
			}
			if c.expect == CueSpeech {
				assert.Equal(t, []string{"espeak-ng", "-v", "vi", "Xin chào"}, rec.calls[len(rec.calls)-1])
			}
		})
	}
}

func TestCueSilentWithoutCommands(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	cue := NewCue(CueConfig{Text: "Xin chào"}, nil, nil, log)
	assert.Equal(t, CueSilence, cue.Play(context.Background()))
}
