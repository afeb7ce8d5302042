// Package printers renders items, prototypes, and reminders for the
// terminal.
package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/calderalabs/bestbefore/pkg/item"
	"github.com/calderalabs/bestbefore/pkg/notify"
)

const layoutISO = "2006-01-02"

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Items prints the sorted collection with each item's index, expiry date,
// and live detail text.
func (pp *PrettyPrint) Items(now time.Time, items ...*item.Item) {
	if len(items) == 0 {
		pp.none()
		return
	}

	expired := color.New(color.FgRed)
	soon := color.New(color.FgHiYellow)

	table := uitable.New()
	table.AddRow("#", "NAME", "EXPIRES", "", "BARCODE")
	for i, it := range items {
		details := it.Details(now)
		switch {
		case !it.ExpiresAt.After(now):
			details = expired.Sprint(details)
		case it.ExpiresAt.Before(now.AddDate(0, 0, 3)):
			details = soon.Sprint(details)
		}
		table.AddRow(i, it.Name, it.ExpiresAt.Format(layoutISO), details, it.Barcode)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Prototypes prints the barcode-keyed prototype set.
func (pp *PrettyPrint) Prototypes(protos ...item.Prototype) {
	if len(protos) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.AddRow("BARCODE", "NAME", "SHELF LIFE")
	for _, p := range protos {
		days := int(p.Interval.Hours() / 24)
		table.AddRow(p.Barcode, p.Name, fmt.Sprintf("%d days", days))
	}
	fmt.Println(table)
	fmt.Println("")
}

// Reminders prints pending reminder requests ordered as given.
func (pp *PrettyPrint) Reminders(reqs ...notify.Request) {
	if len(reqs) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.AddRow("FIRES", "TITLE", "BODY")
	for _, req := range reqs {
		table.AddRow(req.FireAt.Format("2006-01-02 15:04"), req.Title, req.Body)
	}
	fmt.Println(table)
	fmt.Println("")
}
