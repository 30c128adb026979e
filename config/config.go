package config

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config bounds a verification flow.
type Config struct {
	// PollTimeout is the overall budget of each wait for the view to
	// catch up; PollDelay the sleep between attempts.
	PollTimeout time.Duration
	PollDelay   time.Duration
	// PollMaxDelay, when above PollDelay, enables exponential delay
	// growth between attempts.
	PollMaxDelay time.Duration
	// EnumerateLimit caps the records collected per enumeration,
	// PageLimit the scroll advances per walk.
	EnumerateLimit int
	PageLimit      int
	Debug          bool
}

type configTmp struct {
	PollTimeout    time.Duration `yaml:"poll_timeout"`
	PollDelay      time.Duration `yaml:"poll_delay"`
	PollMaxDelay   time.Duration `yaml:"poll_max_delay,omitempty"`
	EnumerateLimit int           `yaml:"enumerate_limit,omitempty"`
	PageLimit      int           `yaml:"page_limit,omitempty"`
	Debug          bool          `yaml:"debug,omitempty"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		PollTimeout:    5 * time.Second,
		PollDelay:      50 * time.Millisecond,
		EnumerateLimit: 5,
		PageLimit:      50,
	}
}

// Get reads configuration from the file named by the -config flag, or
// from individual flags when no file is given.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	pollTimeout := flag.Duration("polltimeout", Default().PollTimeout, "poll budget per wait")
	pollDelay := flag.Duration("polldelay", Default().PollDelay, "delay between poll attempts")
	limit := flag.Int("limit", Default().EnumerateLimit, "max records per enumeration")
	pageLimit := flag.Int("pagelimit", Default().PageLimit, "max scroll pages per enumeration")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	cfg := Config{
		PollTimeout:    *pollTimeout,
		PollDelay:      *pollDelay,
		EnumerateLimit: *limit,
		PageLimit:      *pageLimit,
		Debug:          *debug,
	}
	return cfg, cfg.validate()
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "incorrect yaml config")
	}

	cfg := Default()
	if tmp.PollTimeout > 0 {
		cfg.PollTimeout = tmp.PollTimeout
	}
	if tmp.PollDelay > 0 {
		cfg.PollDelay = tmp.PollDelay
	}
	cfg.PollMaxDelay = tmp.PollMaxDelay
	if tmp.EnumerateLimit > 0 {
		cfg.EnumerateLimit = tmp.EnumerateLimit
	}
	if tmp.PageLimit > 0 {
		cfg.PageLimit = tmp.PageLimit
	}
	cfg.Debug = tmp.Debug

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.PollTimeout <= 0 {
		return errors.New("poll_timeout must be positive")
	}
	if c.PollDelay < 0 {
		return errors.New("poll_delay must not be negative")
	}
	if c.PageLimit <= 0 {
		return errors.New("page_limit must be positive")
	}
	return nil
}
