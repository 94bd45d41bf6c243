package config

import (
	"errors"
	"os"
)

// Fixed platform identifiers. These are constants of the tracked channel,
// not runtime configuration.
const (
	// Bilibili User ID from URL: https://space.bilibili.com/491306902 -> 491306902
	BilibiliUserID = "491306902"
	// YouTube Channel ID from URL: https://www.youtube.com/channel/UC_5lJHgnMP_lb_VpIiXV0hQ -> UC_5lJHgnMP_lb_VpIiXV0hQ
	YouTubeChannelID = "UC_5lJHgnMP_lb_VpIiXV0hQ"
	// KVKeyName is the single key the snapshot is stored under.
	KVKeyName = "follower_counts"
)

// Default upstream endpoints, overridable for tests.
const (
	DefaultBilibiliAPIURL = "https://api.bilibili.com"
	DefaultYouTubeAPIURL  = "https://www.googleapis.com/youtube/v3"
)

// ErrMissingEnv is returned verbatim in the 500 error body when required
// configuration is absent.
var ErrMissingEnv = errors.New("Missing required environment variables (YOUTUBE_API_KEY, KV_REST_API_URL, KV_REST_API_TOKEN)")

// Config is a snapshot of the environment, taken fresh on each invocation so
// tests can inject fakes and nothing hides in process-wide state.
type Config struct {
	YouTubeAPIKey string
	KVRestAPIURL  string
	KVRestToken   string

	BilibiliAPIURL string
	YouTubeAPIURL  string
}

// Load reads the environment. It does not validate; call Validate before
// any network I/O.
func Load() Config {
	cfg := Config{
		YouTubeAPIKey:  os.Getenv("YOUTUBE_API_KEY"),
		KVRestAPIURL:   os.Getenv("KV_REST_API_URL"),
		KVRestToken:    os.Getenv("KV_REST_API_TOKEN"),
		BilibiliAPIURL: os.Getenv("BILIBILI_API_URL"),
		YouTubeAPIURL:  os.Getenv("YOUTUBE_API_URL"),
	}
	if cfg.BilibiliAPIURL == "" {
		cfg.BilibiliAPIURL = DefaultBilibiliAPIURL
	}
	if cfg.YouTubeAPIURL == "" {
		cfg.YouTubeAPIURL = DefaultYouTubeAPIURL
	}
	return cfg
}

// Validate reports whether the three required values are present.
func (c Config) Validate() error {
	if c.YouTubeAPIKey == "" || c.KVRestAPIURL == "" || c.KVRestToken == "" {
		return ErrMissingEnv
	}
	return nil
}
