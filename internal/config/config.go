package config

import "time"

// Config holds runtime settings for the traincrew CLI.
//
// Fields:
//   - DataDir: directory for the database and materialized files.
//   - DatabaseFile: sqlite file name inside DataDir.
//   - QuotaBytes: client-side storage capacity; writes beyond it fail.
//   - ShareBaseURL: origin+path that share tokens are appended to.
//   - PDFViewerCmd: command used to open decoded PDF files.
//   - ReleaseDelay: how long transient opened files live before removal.
//   - PhotoMaxWidth/PhotoQuality: normalization bounds for document and
//     incident photos.
//   - AvatarMaxWidth/AvatarQuality: normalization bounds for crew avatars.
type Config struct {
	DataDir        string
	DatabaseFile   string
	QuotaBytes     int64
	ShareBaseURL   string
	PDFViewerCmd   string
	ReleaseDelay   time.Duration
	PhotoMaxWidth  int
	PhotoQuality   float64
	AvatarMaxWidth int
	AvatarQuality  float64
}

// LoadDefaults populates c with sensible defaults. The normalization pairs
// are the two fixed call sites of the image normalizer.
func (c *Config) LoadDefaults() {
	c.DataDir = "traincrew-data"
	c.DatabaseFile = "traincrew.db"
	c.QuotaBytes = 5 * 1024 * 1024
	c.ShareBaseURL = "https://traincrew.local/app"
	c.PDFViewerCmd = "xdg-open"
	c.ReleaseDelay = 20 * time.Second
	c.PhotoMaxWidth = 1024
	c.PhotoQuality = 0.6
	c.AvatarMaxWidth = 300
	c.AvatarQuality = 0.7
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
