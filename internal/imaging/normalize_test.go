package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/datauri"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeToken(t *testing.T, token datauri.Token) (image.Image, string) {
	t.Helper()
	data, mimeType, err := datauri.Decode(token)
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, mimeType
}

func TestNormalize_DownscalesWideImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2000, 1000))

	token, err := Normalize(pngBytes(t, src), 1024, 0.6)
	require.NoError(t, err)

	out, mimeType := decodeToken(t, token)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, 1024, out.Bounds().Dx())
	assert.Equal(t, 512, out.Bounds().Dy(), "aspect ratio must be preserved")
}

func TestNormalize_NeverUpscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))

	token, err := Normalize(pngBytes(t, src), 1024, 0.6)
	require.NoError(t, err)

	out, _ := decodeToken(t, token)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())
}

func TestNormalize_FlattensTransparencyOntoWhite(t *testing.T) {
	// Fully transparent source.
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))

	token, err := Normalize(pngBytes(t, src), 300, 0.7)
	require.NoError(t, err)

	out, mimeType := decodeToken(t, token)
	assert.Equal(t, "image/jpeg", mimeType, "output format is fixed regardless of input")

	r, g, b, a := out.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xffff), a, "jpeg output is opaque")
	// JPEG is lossy; white should survive within a small tolerance.
	for _, c := range []uint32{r, g, b} {
		assert.Greater(t, c, uint32(0xf000), "transparent input must flatten to white")
	}
}

func TestNormalize_OutputIsJPEGForJPEGInput(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			src.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	token, err := Normalize(pngBytes(t, src), 1024, 0.6)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", token.MimeType())
}

func TestNormalize_CorruptInput(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"), 1024, 0.6)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDecode)
}

func TestJPEGQualityMapping(t *testing.T) {
	assert.Equal(t, 60, jpegQuality(0.6))
	assert.Equal(t, 70, jpegQuality(0.7))
	assert.Equal(t, 1, jpegQuality(0))
	assert.Equal(t, 100, jpegQuality(1.5))
}
