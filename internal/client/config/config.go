package config

import "time"

// Config holds runtime settings for the StudyTrack CLI.
//
// Fields:
//   - ServerBaseURL: origin of the backend REST API; only requests to this
//     origin carry the bearer token.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: sqlite file holding persisted client state (token, theme).
//   - DownloadDir: directory for downloaded files; relative paths resolve
//     against the working dir.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "studytrack.db"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
