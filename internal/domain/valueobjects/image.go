package valueobjects

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
	GIF  ImageFormat = "gif"
	WEBP ImageFormat = "webp"

	// デコーダが無い形式 (BMP, HEIC など)。バイト列はそのまま転送する
	Unknown ImageFormat = ""
)

// MaxPixels caps width*height of any decodable input.
const MaxPixels = 40_000_000

// DefaultMimeType is used when the provider reports no mime type.
const DefaultMimeType = "image/png"

const base64Marker = "base64,"

// ErrEmptyImage is returned when an image payload carries no bytes.
var ErrEmptyImage = errors.New("image data cannot be empty")

// ErrImageTooLarge is returned when the declared dimensions exceed MaxPixels.
var ErrImageTooLarge = errors.New("image dimensions exceed limit")

type ImageData struct {
	data   []byte
	format ImageFormat
}

func NewImageData(data []byte) (*ImageData, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	format, err := detectFormat(data)
	if err != nil {
		return nil, err
	}

	return &ImageData{
		data:   data,
		format: format,
	}, nil
}

// DecodeBase64 strips an optional data URL header ("data:image/png;base64,")
// and decodes the rest. An empty input yields ErrEmptyImage.
func DecodeBase64(encoded string) ([]byte, error) {
	if i := strings.Index(encoded, base64Marker); i >= 0 {
		encoded = encoded[i+len(base64Marker):]
	}
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrEmptyImage
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) Format() ImageFormat {
	return i.format
}

func (i *ImageData) MimeType() string {
	if i.format == Unknown {
		return "application/octet-stream"
	}
	return "image/" + string(i.format)
}

func (i *ImageData) IsJPEG() bool {
	return i.format == JPEG
}

// ToJPEG re-encodes decodable images as JPEG, flattening transparency onto
// white. JPEG input, unknown formats and bodies that fail to decode are
// returned unchanged.
func (i *ImageData) ToJPEG() (*ImageData, error) {
	if i.IsJPEG() || i.format == Unknown {
		return i, nil
	}

	reader := bytes.NewReader(i.data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return i, nil
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	if err := jpeg.Encode(&buf, canvas, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return &ImageData{
		data:   buf.Bytes(),
		format: JPEG,
	}, nil
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

func (i *ImageData) ToDataURL() string {
	return DataURL(i.MimeType(), i.data)
}

// DataURL renders raw bytes as a data: URL. An empty mime type falls back
// to DefaultMimeType.
func DataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// detectFormat reads only the image header. Unreadable headers are Unknown,
// not an error.
func detectFormat(data []byte) (ImageFormat, error) {
	reader := bytes.NewReader(data)
	cfg, format, err := image.DecodeConfig(reader)
	if err != nil {
		return Unknown, nil
	}

	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	switch format {
	case "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WEBP, nil
	default:
		return Unknown, nil
	}
}
