package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/khanhtv/traincrew/internal/flagx"
	"github.com/khanhtv/traincrew/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the release delay either as a string
// like "20s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	QuotaBytes     int64          `json:"quota_bytes"`
	ShareBaseURL   string         `json:"share_base_url"`
	PDFViewerCmd   string         `json:"pdf_viewer_cmd"`
	ReleaseDelay   timex.Duration `json:"release_delay"`
	PhotoMaxWidth  int            `json:"photo_max_width"`
	PhotoQuality   float64        `json:"photo_quality"`
	AvatarMaxWidth int            `json:"avatar_max_width"`
	AvatarQuality  float64        `json:"avatar_quality"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JsonConfigFlags(); when absent, nothing is loaded. Zero-valued JSON
// fields leave the corresponding Config fields untouched so the file can be
// partial. Panics on read or unmarshal errors (caller should recover if
// desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.QuotaBytes > 0 {
		cfg.QuotaBytes = jc.QuotaBytes
	}
	if jc.ShareBaseURL != "" {
		cfg.ShareBaseURL = jc.ShareBaseURL
	}
	if jc.PDFViewerCmd != "" {
		cfg.PDFViewerCmd = jc.PDFViewerCmd
	}
	if jc.ReleaseDelay.Duration > 0 {
		cfg.ReleaseDelay = time.Duration(jc.ReleaseDelay.Duration)
	}
	if jc.PhotoMaxWidth > 0 {
		cfg.PhotoMaxWidth = jc.PhotoMaxWidth
	}
	if jc.PhotoQuality > 0 {
		cfg.PhotoQuality = jc.PhotoQuality
	}
	if jc.AvatarMaxWidth > 0 {
		cfg.AvatarMaxWidth = jc.AvatarMaxWidth
	}
	if jc.AvatarQuality > 0 {
		cfg.AvatarQuality = jc.AvatarQuality
	}
}
