package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/datauri"
	"github.com/khanhtv/traincrew/internal/imaging"
	"github.com/khanhtv/traincrew/internal/records"
)

// normalizeImages reads and re-encodes photos to the given size, returning
// tokens in input order.
func normalizeImages(paths []string, maxWidth int, quality float64) ([]datauri.Token, error) {
	tokens := make([]datauri.Token, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", p, err)
		}
		token, err := imaging.Normalize(data, maxWidth, quality)
		if err != nil {
			return nil, fmt.Errorf("image %s: %w", p, err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

type encodedFile struct {
	name  string
	token datauri.Token
	mime  string
}

// encodeFilesAsync encodes each file off the calling goroutine and collects
// results in completion order, so the stored order of same-kind
// attachments is not guaranteed to match input order. Cancelling ctx
// abandons outstanding encodes.
func encodeFilesAsync(ctx context.Context, paths []string) ([]encodedFile, error) {
	type result struct {
		encodedFile
		err error
	}
	ch := make(chan result, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		datauri.EncodeFileAsync(ctx, p, func(token datauri.Token, mime string, err error) {
			ch <- result{encodedFile{name: name, token: token, mime: mime}, err}
		})
	}

	out := make([]encodedFile, 0, len(paths))
	for range paths {
		select {
		case r := <-ch:
			if r.err != nil {
				return nil, r.err
			}
			out = append(out, r.encodedFile)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return out, nil
}

// pdfAttachments encodes documents verbatim and rejects anything that is
// not a PDF.
func pdfAttachments(ctx context.Context, paths []string) ([]records.Attachment, error) {
	files, err := encodeFilesAsync(ctx, paths)
	if err != nil {
		return nil, err
	}
	out := make([]records.Attachment, 0, len(files))
	for _, f := range files {
		if datauri.Family(f.mime) != records.AttachmentPDF {
			return nil, fmt.Errorf("%w: %s is not a pdf", common.ErrFormat, f.name)
		}
		out = append(out, records.Attachment{Name: f.name, URL: f.token, Type: records.AttachmentPDF})
	}
	return out, nil
}
