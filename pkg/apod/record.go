// Package apod talks to NASA's Astronomy Picture of the Day API.
package apod

import "time"

// MediaKind is the kind of asset a Picture points at.
type MediaKind string

const (
	// MediaImage is a displayable still image.
	MediaImage MediaKind = "image"
	// MediaVideo is an embeddable video, usually a player URL.
	MediaVideo MediaKind = "video"
)

// DateLayout is the calendar date format used by the API.
const DateLayout = "2006-01-02"

// Picture is one day's record as returned by the API. Records are never
// mutated after decoding.
type Picture struct {
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Explanation string    `json:"explanation"`
	URL         string    `json:"url"`
	MediaType   MediaKind `json:"media_type"`
	HDURL       string    `json:"hdurl,omitempty"`
	Copyright   string    `json:"copyright,omitempty"`
}

// IsImage reports if the primary asset is a still image.
func (p Picture) IsImage() bool { return p.MediaType == MediaImage }

// IsVideo reports if the primary asset is a video.
func (p Picture) IsVideo() bool { return p.MediaType == MediaVideo }

// ImageURL returns the best locator for an image record: the HD url when the
// source provided one, otherwise the primary url.
func (p Picture) ImageURL() string {
	if p.HDURL != "" {
		return p.HDURL
	}
	return p.URL
}

// FormatDate renders t as an API calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an API calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
