// Package mcp provides the Model Context Protocol server integration for cosmic.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/timeutil"
)

// Client is the part of the API client the server uses.
type Client interface {
	Fetch(ctx context.Context, date *time.Time) (*apod.Picture, error)
	Gallery(ctx context.Context, ref time.Time, n int) ([]apod.Picture, error)
}

// Sampler picks a day.
type Sampler interface {
	Sample() time.Time
}

// Service coordinates the API operations that are shared by the MCP tools and
// resources.
type Service struct {
	Client  Client
	Sampler Sampler
	Now     func() time.Time
}

// ErrNoClient is returned when the service has nothing to fetch with.
var ErrNoClient = errors.New("mcp service requires an apod client")

// NewService returns a service backed by client. A nil sampler draws from
// apod.NewSampler.
func NewService(client Client, sampler Sampler) *Service {
	if sampler == nil {
		sampler = apod.NewSampler()
	}
	return &Service{Client: client, Sampler: sampler, Now: time.Now}
}

func (s *Service) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	n := now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// Picture returns the record for day, formatted as YYYY-MM-DD, or the latest
// record when day is empty.
func (s *Service) Picture(ctx context.Context, day string) (*apod.Picture, error) {
	if s.Client == nil {
		return nil, ErrNoClient
	}
	if day == "" {
		return s.Client.Fetch(ctx, nil)
	}
	t, err := apod.ParseDate(day)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected %s", day, apod.DateLayout)
	}
	today := s.today()
	if t.Before(apod.Epoch) || t.After(today) {
		return nil, fmt.Errorf("date must be between %s and %s",
			apod.FormatDate(apod.Epoch), apod.FormatDate(today))
	}
	return s.Client.Fetch(ctx, &t)
}

// Random returns the record of a uniformly sampled day.
func (s *Service) Random(ctx context.Context) (*apod.Picture, error) {
	if s.Client == nil {
		return nil, ErrNoClient
	}
	day := s.Sampler.Sample()
	return s.Client.Fetch(ctx, &day)
}

// Gallery returns the images among the last days, most recent first. window
// takes the same forms as the gallery command's --days flag; empty means
// apod.GalleryDays.
func (s *Service) Gallery(ctx context.Context, window string) ([]apod.Picture, int, error) {
	if s.Client == nil {
		return nil, 0, ErrNoClient
	}
	days := apod.GalleryDays
	if window != "" {
		n, err := timeutil.ParseDays(window)
		if err != nil {
			return nil, 0, err
		}
		days = n
	}
	if days > apod.MaxGalleryDays {
		return nil, 0, fmt.Errorf("days must be at most %d, got %d", apod.MaxGalleryDays, days)
	}
	pics, err := s.Client.Gallery(ctx, s.today(), days)
	if err != nil {
		return nil, days, err
	}
	if pics == nil {
		pics = []apod.Picture{}
	}
	return pics, days, nil
}

// PictureDTO is a transport-friendly projection of a picture.
type PictureDTO struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	MediaType   string `json:"mediaType"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl,omitempty"`
	HDURL       string `json:"hdUrl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

func pictureDTO(p *apod.Picture) PictureDTO {
	dto := PictureDTO{
		Date:        p.Date,
		Title:       p.Title,
		MediaType:   string(p.MediaType),
		URL:         p.URL,
		HDURL:       p.HDURL,
		Copyright:   p.Copyright,
		Explanation: p.Explanation,
	}
	if p.IsImage() {
		dto.ImageURL = p.ImageURL()
	}
	return dto
}
