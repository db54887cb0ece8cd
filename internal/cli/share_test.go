package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhtv/traincrew/internal/config"
	"github.com/khanhtv/traincrew/internal/logging"
	"github.com/khanhtv/traincrew/internal/sharelink"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func shareTestApp(t *testing.T) *App {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DataDir = t.TempDir()
	return &App{
		config: c,
		logger: logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func TestOpenSharedURL_RendersPayload(t *testing.T) {
	lines := captureOutput(t)
	a := shareTestApp(t)

	token, err := sharelink.Encode(sharelink.Payload{Incident: &sharelink.Incident{
		Description: "Trượt bánh", Timestamp: "09:00:00 2/1/2026",
	}})
	require.NoError(t, err)
	url := sharelink.BuildURL(a.config.ShareBaseURL, token)

	a.OpenSharedURL(url)

	out := strings.Join(*lines, "")
	assert.Contains(t, out, "Báo cáo sự cố")
	assert.Contains(t, out, "Trượt bánh")
	assert.Contains(t, out, a.config.ShareBaseURL)
	assert.NotContains(t, out, "share=", "consumed token is stripped from the shown url")
}

func TestOpenSharedURL_BadTokenSingleMessage(t *testing.T) {
	lines := captureOutput(t)
	a := shareTestApp(t)

	a.OpenSharedURL(a.config.ShareBaseURL + "?share=not-base64!!")

	require.Len(t, *lines, 1, "exactly one uniform error line")
	assert.Contains(t, (*lines)[0], "Không thể mở liên kết chia sẻ")
}

func TestOpenSharedURL_NoTokenIsIgnored(t *testing.T) {
	lines := captureOutput(t)
	a := shareTestApp(t)

	a.OpenSharedURL(a.config.ShareBaseURL)
	assert.Empty(t, *lines)
}

func TestShare_PrintsTextAndURL(t *testing.T) {
	lines := captureOutput(t)
	a := shareTestApp(t)

	err := a.share(sharelink.Payload{Crew: &sharelink.Crew{List: nil}}, "Danh sách tổ lái:", nil)
	require.NoError(t, err)

	out := strings.Join(*lines, "")
	assert.Contains(t, out, "Danh sách tổ lái:")
	assert.Contains(t, out, a.config.ShareBaseURL+"?share=")
}
