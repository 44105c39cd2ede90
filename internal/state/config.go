package state

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/helpers"
	kiosk_config "github.com/nbkstem/booth/internal/kiosk/config"
	"github.com/nbkstem/booth/log2"
	tele_config "github.com/nbkstem/booth/tele/config"
)

const (
	DefaultChatTimeout  = 30 * time.Second
	DefaultWebListen    = "127.0.0.1:8040"
	DefaultMarqueeWidth = 32
)

type Config struct {
	// includeSeen contains absolute paths to prevent include loops
	includeSeen map[string]struct{}
	// only used for Unmarshal, do not access
	XXX_Include []ConfigSource `hcl:"include"`

	BoothId int `hcl:"booth_id"`

	Hardware struct {
		Input struct {
			DevInputEvent struct {
				Enable bool   `hcl:"enable"`
				Device string `hcl:"device"`
				Grab   bool   `hcl:"grab"`
			} `hcl:"dev_input_event"`
		} `hcl:"input"`
		Marquee struct {
			Enable        bool `hcl:"enable"`
			Width         int  `hcl:"width"`
			ScrollDelayMs int  `hcl:"scroll_delay_ms"`
		} `hcl:"marquee"`
	} `hcl:"hardware"`

	Chat struct {
		Endpoint    string `hcl:"endpoint"`
		TimeoutSec  int    `hcl:"timeout_sec"`
		Preface     string `hcl:"preface"`
		PrefaceFile string `hcl:"preface_file"`
		MsgStatus   string `hcl:"msg_status"`
		MsgError    string `hcl:"msg_error"`
		MsgEmpty    string `hcl:"msg_empty"`
		MsgNetwork  string `hcl:"msg_network"`
	} `hcl:"chat"`

	Media struct {
		Root          string   `hcl:"root"`
		IntroVideo    string   `hcl:"intro_video"`
		WelcomeAudio  string   `hcl:"welcome_audio"`
		AudioPlayer   []string `hcl:"audio_player"`
		SpeechCommand []string `hcl:"speech_command"`
		Watch         bool     `hcl:"watch"`
		CueTimeoutSec int      `hcl:"cue_timeout_sec"`
	} `hcl:"media"`

	Persist struct {
		Root string `hcl:"root"`
	} `hcl:"persist"`

	Storage struct {
		Persist         bool   `hcl:"persist"`
		ScriptURL       string `hcl:"script_url"`
		TimeoutSec      int    `hcl:"timeout_sec"`
		AttachmentMaxKB int    `hcl:"attachment_max_kb"`
		RetryMinSec     int    `hcl:"retry_min_sec"`
		RetryMaxSec     int    `hcl:"retry_max_sec"`
	} `hcl:"storage"`

	Tele tele_config.Config  `hcl:"tele"`
	UI   kiosk_config.Config `hcl:"ui"`

	Web struct {
		Listen      string `hcl:"listen"`
		StaticDir   string `hcl:"static_dir"`
		LogRequests bool   `hcl:"log_requests"`
	} `hcl:"web"`

	_copy_guard sync.Mutex //nolint:unused
}

type ConfigSource struct {
	Name     string `hcl:"name,key"`
	Optional bool   `hcl:"optional"`
}

func (c *Config) ChatTimeout() time.Duration {
	return helpers.IntSecondDefault(c.Chat.TimeoutSec, DefaultChatTimeout)
}

func (c *Config) WebListen() string {
	if c.Web.Listen == "" {
		return DefaultWebListen
	}
	return c.Web.Listen
}

func (c *Config) read(log *log2.Log, fs FullReader, source ConfigSource, errs *[]error) {
	norm := fs.Normalize(source.Name)
	if _, ok := c.includeSeen[norm]; ok {
		log.Fatalf("config duplicate source=%s", source.Name)
	} else {
		log.Debugf("config reading source='%s' path=%s", source.Name, norm)
	}
	c.includeSeen[source.Name] = struct{}{}
	c.includeSeen[norm] = struct{}{}

	bs, err := fs.ReadAll(norm)
	if bs == nil && err == nil {
		if !source.Optional {
			err = errors.NotFoundf("config required name=%s path=%s", source.Name, norm)
			*errs = append(*errs, err)
		}
		return
	}
	if err != nil {
		*errs = append(*errs, errors.Annotatef(err, "config source=%s", source.Name))
		return
	}

	err = hcl.Unmarshal(bs, c)
	if err != nil {
		err = errors.Annotatef(err, "config unmarshal source=%s content='%s'", source.Name, string(bs))
		*errs = append(*errs, err)
		return
	}

	var includes []ConfigSource
	includes, c.XXX_Include = c.XXX_Include, nil
	for _, include := range includes {
		includeNorm := fs.Normalize(include.Name)
		if _, ok := c.includeSeen[includeNorm]; ok {
			err = errors.Errorf("config include loop: from=%s include=%s", source.Name, include.Name)
			*errs = append(*errs, err)
			continue
		}
		c.read(log, fs, include, errs)
	}
}

func ReadConfig(log *log2.Log, fs FullReader, names ...string) (*Config, error) {
	if len(names) == 0 {
		log.Fatal("code error [Must]ReadConfig() without names")
	}

	if osfs, ok := fs.(*OsFullReader); ok {
		dir, name := filepath.Split(names[0])
		osfs.SetBase(dir)
		names[0] = name
	}
	c := &Config{
		includeSeen: make(map[string]struct{}),
	}
	errs := make([]error, 0, 8)
	for _, name := range names {
		c.read(log, fs, ConfigSource{Name: name}, &errs)
	}
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, fs FullReader, names ...string) *Config {
	c, err := ReadConfig(log, fs, names...)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}
