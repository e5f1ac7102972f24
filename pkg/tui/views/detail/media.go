package detail

import "tableflip.dev/cosmic/pkg/apod"

// MediaKind selects how the media block of a record is presented.
type MediaKind int

const (
	// MediaNone is returned for a nil record.
	MediaNone MediaKind = iota
	// Player is an embedded video player.
	Player
	// Image is a still image.
	Image
	// Link is any other media type, shown as a plain locator.
	Link
)

func (k MediaKind) String() string {
	switch k {
	case Player:
		return "player"
	case Image:
		return "image"
	case Link:
		return "link"
	default:
		return "none"
	}
}

// Media is the presentation of a record's media.
type Media struct {
	Kind MediaKind
	// Src is the locator shown in the media block.
	Src string
	// Download is the HD locator; empty when the record has none.
	Download string
}

// MediaFor projects p onto its media block.
func MediaFor(p *apod.Picture) Media {
	if p == nil {
		return Media{}
	}
	m := Media{Download: p.HDURL}
	switch {
	case p.IsVideo():
		m.Kind = Player
		m.Src = p.URL
	case p.IsImage():
		m.Kind = Image
		m.Src = p.ImageURL()
	default:
		m.Kind = Link
		m.Src = p.URL
	}
	return m
}
