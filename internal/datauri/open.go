package datauri

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khanhtv/traincrew/internal/logging"
)

// Opener materializes tokens into openable files. Decoded content is written
// under Dir as a transient file; PDFs are additionally handed to ViewerCmd,
// anything else is left in Dir as a plain download. Every transient file is
// removed after Delay, whether or not the user touched it, to bound disk
// growth from repeated opens.
type Opener struct {
	Dir       string
	ViewerCmd string
	Delay     time.Duration
	Logger    logging.Logger

	// launch and schedule are test seams.
	launch   func(cmd, path string) error
	schedule func(d time.Duration, fn func())
}

func NewOpener(dir, viewerCmd string, delay time.Duration, logger logging.Logger) *Opener {
	return &Opener{
		Dir:       dir,
		ViewerCmd: viewerCmd,
		Delay:     delay,
		Logger:    logger,
		launch: func(cmd, path string) error {
			return exec.Command(cmd, path).Start()
		},
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Open decodes the token and makes its content available to the user. It
// returns the transient file path. Malformed tokens fail with the codec's
// error; existing files and state are left untouched.
func (o *Opener) Open(ctx context.Context, token Token, filename string) (string, error) {
	data, mimeType, err := Decode(token)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(o.Dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", o.Dir, err)
	}

	name := fmt.Sprintf("%s-%s", uuid.NewString()[:8], filepath.Base(filename))
	path := filepath.Join(o.Dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	if mimeType == MimePDF {
		if err := o.launch(o.ViewerCmd, path); err != nil {
			// Viewer could not start; the file stays in Dir as a plain
			// download.
			o.Logger.Warn("pdf viewer failed, leaving file as download",
				"path", path, "error", err)
		}
	}

	o.schedule(o.Delay, func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			o.Logger.Warn("transient file cleanup failed",
				"path", path, "error", err)
		}
	})

	return path, nil
}

// ToShareableFile materializes a token into dir under the given file name so
// it can be handed to the platform share surface. A malformed token yields
// ("", nil) rather than an error, so one bad attachment never aborts sharing
// the rest.
func ToShareableFile(dir string, token Token, filename string) (string, error) {
	data, _, err := Decode(token)
	if err != nil {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := shareablePath(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// shareablePath returns dir/name, bumping to "name (1).ext", "name (2).ext"
// and so on while the name is already taken, so sibling attachments with
// equal names never overwrite each other.
func shareablePath(dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
	}
}
