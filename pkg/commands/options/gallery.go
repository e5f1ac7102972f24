package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
	"tableflip.dev/cosmic/pkg/timeutil"
)

// GalleryOptions sizes the gallery window.
type GalleryOptions struct {
	Window string
	Days   int
}

func AddGalleryArgs(cmd *cobra.Command, o *GalleryOptions) {
	cmd.Flags().StringVar(&o.Window, "days", strconv.Itoa(apod.GalleryDays),
		fmt.Sprintf("Days, ending today, to collect images from, at most %d, example: --days=30 or --days=2w.", apod.MaxGalleryDays))
}

// Validate resolves Window into Days.
func (o *GalleryOptions) Validate() error {
	days, err := timeutil.ParseDays(o.Window)
	if err != nil {
		return err
	}
	if days > apod.MaxGalleryDays {
		return fmt.Errorf("--days must be at most %d, got %d", apod.MaxGalleryDays, days)
	}
	o.Days = days
	return nil
}
