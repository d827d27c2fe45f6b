package valueobjects

import (
	"net/url"
	"strings"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// MediaType represents the kind of a media asset
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
)

// ParseMediaType parses a media type name, case-insensitively
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(strings.ToUpper(strings.TrimSpace(s))) {
	case MediaTypeImage:
		return MediaTypeImage, nil
	case MediaTypeVideo:
		return MediaTypeVideo, nil
	default:
		return "", pkgerrors.NewMediaTypeInvalid(s)
	}
}

// Media is a typed reference to an asset reachable at an absolute URL
type Media struct {
	url       string
	mediaType MediaType
}

// NewMedia requires rawURL to be absolute, with a scheme and a host
func NewMedia(rawURL string, mediaType MediaType) (Media, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return Media{}, pkgerrors.NewMediaURLMalformed(rawURL, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return Media{}, pkgerrors.NewMediaURLMalformed(rawURL, nil)
	}

	normalized, err := ParseMediaType(string(mediaType))
	if err != nil {
		return Media{}, err
	}

	return Media{url: rawURL, mediaType: normalized}, nil
}

// URL returns the media URL exactly as supplied
func (m Media) URL() string {
	return m.url
}

// Type returns the media type
func (m Media) Type() MediaType {
	return m.mediaType
}

// Equals checks if two media references are equal
func (m Media) Equals(other Media) bool {
	return m.url == other.url && m.mediaType == other.mediaType
}
