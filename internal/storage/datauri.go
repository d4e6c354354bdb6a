package storage

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// extensions maps allowed image content types to file extensions. Anything
// else is rejected at upload time.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Extension returns the file extension for an allowed image content type.
func Extension(contentType string) (string, bool) {
	ext, ok := extensions[contentType]
	return ext, ok
}

// ParseDataURI decodes a base64 data URI ("data:image/png;base64,....")
// into its content type and raw bytes.
func ParseDataURI(uri string) (contentType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("storage: not a data uri")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("storage: malformed data uri")
	}
	contentType, _, _ = strings.Cut(meta, ";")
	if !strings.Contains(meta, ";base64") {
		return "", nil, fmt.Errorf("storage: data uri is not base64")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("storage: decode data uri: %w", err)
	}
	return contentType, data, nil
}
