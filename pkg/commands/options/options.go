// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// AddOptions captures the new-item flags.
type AddOptions struct {
	Name       string
	DateString string
	Days       int
	Months     int
	Years      int
	Barcode    string
	PhotoPath  string
}

// AddItemArgs wires the new-item flags on the provided command.
func AddItemArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "", "Product name.")
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Absolute expiration date, example: --date="2026-09-15".`)
	cmd.Flags().IntVar(&o.Days, "days", 0, "Days of shelf life from today.")
	cmd.Flags().IntVar(&o.Months, "months", 0, "Months of shelf life from today.")
	cmd.Flags().IntVar(&o.Years, "years", 0, "Years of shelf life from today.")
	cmd.Flags().StringVarP(&o.Barcode, "barcode", "b", "",
		"Scanned barcode; known barcodes pre-fill the remaining fields.")
	cmd.Flags().StringVar(&o.PhotoPath, "photo", "", "Path to a product photo.")
}

// GetDate parses the --date flag, nil when unset.
func (o *AddOptions) GetDate() (*time.Time, error) {
	if o.DateString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.DateString)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: %w", o.DateString, err)
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return &t, nil
}

// GetInterval returns the interval flags that were explicitly set.
func (o *AddOptions) GetInterval(cmd *cobra.Command) (days, months, years *int) {
	if cmd.Flags().Changed("days") {
		days = &o.Days
	}
	if cmd.Flags().Changed("months") {
		months = &o.Months
	}
	if cmd.Flags().Changed("years") {
		years = &o.Years
	}
	return days, months, years
}

// GetPhoto reads the photo file, nil when unset.
func (o *AddOptions) GetPhoto() ([]byte, error) {
	if o.PhotoPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(o.PhotoPath)
	if err != nil {
		return nil, fmt.Errorf("reading photo: %w", err)
	}
	return data, nil
}

// ListOptions captures the listing flags.
type ListOptions struct {
	Prototypes bool
	Reminders  bool
}

// AddListArgs wires the listing flags on the provided command.
func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Prototypes, "prototypes", false,
		"Also list the known products by barcode.")
	cmd.Flags().BoolVar(&o.Reminders, "reminders", false,
		"Also list the pending reminders.")
}
