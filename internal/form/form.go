// Package form decodes uploaded images from multipart bodies and data URIs.
package form

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	magicNumberSeek = 512
	dataURIPrefix   = "data:image/"
	base64Marker    = ";base64,"
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

// declaredTypes maps the subtype of a data URI to a MIME type. Sniffing
// cannot recognise svg, so the declared type is trusted for it.
var declaredTypes = map[string]string{
	"jpeg":    "image/jpeg",
	"jpg":     "image/jpeg",
	"png":     "image/png",
	"gif":     "image/gif",
	"webp":    "image/webp",
	"svg+xml": "image/svg+xml",
	"svg":     "image/svg+xml",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImageUploaded     = errors.New("image not uploaded")
	ErrMalformedDataURI    = errors.New("malformed data uri")
)

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

func ReadFile(file io.ReadCloser) (*File, error) {
	data, err := io.ReadAll(file)
	defer func() { _ = file.Close() }()
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoImageUploaded
	}

	return newFile(data, "")
}

// DecodeDataURI decodes an image of the form data:image/<ext>;base64,<payload>.
func DecodeDataURI(uri string) (*File, error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return nil, fmt.Errorf("missing %q prefix: %w", dataURIPrefix, ErrMalformedDataURI)
	}
	header, payload, ok := strings.Cut(uri[len("data:"):], base64Marker)
	if !ok {
		return nil, fmt.Errorf("missing base64 marker: %w", ErrMalformedDataURI)
	}

	ext := strings.ToLower(strings.TrimPrefix(header, "image/"))
	declared, ok := declaredTypes[ext]
	if !ok {
		return nil, fmt.Errorf("image type %q: %w", ext, ErrUnsupportedMimeType)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", errors.Join(ErrMalformedDataURI, err))
	}
	if len(data) == 0 {
		return nil, ErrNoImageUploaded
	}

	return newFile(data, declared)
}

func newFile(data []byte, declared string) (*File, error) {
	contentType := sniff(data)
	if !allowedImageTypes[contentType] && declared == "image/svg+xml" && looksLikeSVG(data) {
		contentType = declared
	}
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

func sniff(data []byte) string {
	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return contentType
}

func looksLikeSVG(data []byte) bool {
	head := bytes.ToLower(data[:min(len(data), magicNumberSeek)])
	return bytes.Contains(head, []byte("<svg"))
}
