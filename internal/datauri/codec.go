// Package datauri implements the attachment codec: binary file content is
// carried as a self-describing text token of the form
//
//	data:<mime>;base64,<payload>
//
// which is what a browser produces when reading a file as a data URL. The
// token is safe to store as a string field and round-trips byte-exactly.
package datauri

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/khanhtv/traincrew/internal/common"
)

// Token is an encoded binary payload plus its MIME type.
type Token string

const (
	scheme      = "data:"
	b64Marker   = ";base64"
	MimePDF     = "application/pdf"
	defaultMime = "application/octet-stream"
)

// Encode produces a token from raw bytes and a MIME type. An empty MIME type
// falls back to application/octet-stream.
func Encode(data []byte, mimeType string) Token {
	if mimeType == "" {
		mimeType = defaultMime
	}
	return Token(scheme + mimeType + b64Marker + "," + base64.StdEncoding.EncodeToString(data))
}

// Decode is the inverse of Encode. It fails with common.ErrFormat when the
// token has no comma-separated payload segment, when the MIME descriptor
// does not follow the data:<mime>;base64 grammar, or when the payload is not
// valid base64.
func Decode(token Token) ([]byte, string, error) {
	s := string(token)

	head, payload, ok := strings.Cut(s, ",")
	if !ok {
		return nil, "", fmt.Errorf("%w: missing payload separator", common.ErrFormat)
	}

	mimeType, err := parseDescriptor(head)
	if err != nil {
		return nil, "", err
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: bad base64 payload", common.ErrFormat)
	}

	return data, mimeType, nil
}

// parseDescriptor extracts the MIME type from the "data:<mime>;base64" head
// using the fixed ':' / ';' delimiter grammar.
func parseDescriptor(head string) (string, error) {
	rest, ok := strings.CutPrefix(head, scheme)
	if !ok {
		return "", fmt.Errorf("%w: missing data scheme", common.ErrFormat)
	}
	mimeType, _, ok := strings.Cut(rest, ";")
	if !ok || mimeType == "" {
		return "", fmt.Errorf("%w: missing mime descriptor", common.ErrFormat)
	}
	return mimeType, nil
}

// MimeType returns the MIME type carried by the token, or "" when the token
// is malformed.
func (t Token) MimeType() string {
	head, _, ok := strings.Cut(string(t), ",")
	if !ok {
		return ""
	}
	mimeType, err := parseDescriptor(head)
	if err != nil {
		return ""
	}
	return mimeType
}

// Family classifies a MIME type into the attachment families the app knows
// about: "pdf", "image", or "" for anything else.
func Family(mimeType string) string {
	switch {
	case mimeType == MimePDF:
		return "pdf"
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	default:
		return ""
	}
}

// DetectMime resolves a file's MIME type from its extension, falling back to
// content sniffing over the first bytes.
func DetectMime(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		if base, _, err := mime.ParseMediaType(mt); err == nil {
			return base
		}
	}
	return http.DetectContentType(data)
}

// EncodeFile reads the file at path and produces its token together with the
// base file name.
func EncodeFile(path string) (Token, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return Encode(data, DetectMime(path, data)), filepath.Base(path), nil
}

// EncodeFileAsync runs EncodeFile on its own goroutine and delivers the
// result through fn. Concurrently started encodes may complete in any order;
// callers append results in completion order. The callback is suppressed
// once ctx is done, so a torn-down caller never sees a late result.
func EncodeFileAsync(ctx context.Context, path string, fn func(Token, string, error)) {
	go func() {
		token, name, err := EncodeFile(path)
		select {
		case <-ctx.Done():
			return
		default:
		}
		fn(token, name, err)
	}()
}
