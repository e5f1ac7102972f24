package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cosmic/pkg/apod"
)

const layoutShort = "1/2"

// DateOptions selects a calendar day.
type DateOptions struct {
	DateString string
	// Ask prompts for the day when DateString is empty.
	Ask bool

	// Now defaults to time.Now.
	Now func() time.Time
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Specify a day, example: --date="2021-12-25" or --date="12/25". Defaults to the latest picture.`)
	cmd.Flags().BoolVar(&o.Ask, "ask", false, "Prompt for the day.")
}

// Check reports whether value would be accepted as --date.
func (o *DateOptions) Check(value string) error {
	c := *o
	c.DateString = value
	_, err := c.GetDate()
	return err
}

// GetDate returns the requested day, or nil for the latest one. A short
// month/day form means the most recent such day that is not in the future.
func (o *DateOptions) GetDate() (*time.Time, error) {
	if o.DateString == "" {
		return nil, nil
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	n := now()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)

	t, err := apod.ParseDate(o.DateString)
	if err != nil {
		t, err = time.Parse(layoutShort, o.DateString)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q, expected %s or month/day", o.DateString, apod.DateLayout)
		}
		t = t.AddDate(today.Year(), 0, 0)
		if t.After(today) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	if t.Before(apod.Epoch) || t.After(today) {
		return nil, fmt.Errorf("--date %s is outside %s..%s",
			apod.FormatDate(t), apod.FormatDate(apod.Epoch), apod.FormatDate(today))
	}
	return &t, nil
}
