// Package sharelink encodes record payloads into URL-safe tokens that can
// be appended to the app URL and decoded back on the receiving side.
package sharelink

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/khanhtv/traincrew/internal/common"
)

// shareParam is the query parameter carrying the token.
const shareParam = "share"

// Encode serializes the payload to a URL-safe token: standard base64 of
// the JSON bytes with '+' and '/' replaced by '-' and '_'. Padding is
// kept.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}
	token := base64.StdEncoding.EncodeToString(raw)
	token = strings.ReplaceAll(token, "+", "-")
	token = strings.ReplaceAll(token, "/", "_")
	return token, nil
}

// Decode reverses Encode. Tokens in the standard base64 alphabet are
// accepted as well. Any failure, whether in the base64 layer, the JSON
// layer, or the type tag, comes back as ErrShareDecode with the cause
// erased so callers present a single uniform message.
func Decode(token string) (Payload, error) {
	std := strings.ReplaceAll(token, "-", "+")
	std = strings.ReplaceAll(std, "_", "/")

	raw, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return Payload{}, common.ErrShareDecode
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, common.ErrShareDecode
	}
	return p, nil
}

// BuildURL appends the token to base as the share query parameter. The
// token is already URL-safe, so it is appended verbatim.
func BuildURL(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + shareParam + "=" + token
}

// ExtractToken pulls the share token out of a URL. The second return is
// false when no share parameter is present.
func ExtractToken(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	token := u.Query().Get(shareParam)
	return token, token != ""
}

// CleanURL strips the share parameter so the address can be shown
// without the consumed token.
func CleanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if !q.Has(shareParam) {
		return rawURL
	}
	q.Del(shareParam)
	u.RawQuery = q.Encode()
	return u.String()
}
