// Package tui is the interactive terminal surface: the sorted item list with
// a periodic read-side refresh, and the new-item form bound to a form
// session.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calderalabs/bestbefore/pkg/form"
	"github.com/calderalabs/bestbefore/pkg/notify"
	"github.com/calderalabs/bestbefore/pkg/store"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

const layoutISO = "2006-01-02"

// refreshInterval matches the original's display timer: once a minute the
// derived "Expires in" text is recomputed without touching stored state.
const refreshInterval = time.Minute

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	expiredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	soonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Width(12)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type mode int

const (
	modeList mode = iota
	modeForm
)

// form field order; must match the inputs slice.
const (
	fieldName = iota
	fieldBarcode
	fieldDate
	fieldDays
	fieldMonths
	fieldYears
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Barcode", "Date", "Days", "Months", "Years"}

type tickMsg time.Time

type storeEventMsg store.Event

// Model drives both the list and the add form.
type Model struct {
	items      *store.Items
	prototypes *store.Prototypes
	scheduler  *notify.Scheduler
	clock      timeutil.Clock
	events     <-chan store.Event

	mode   mode
	cursor int
	now    time.Time

	session *form.Session
	inputs  []textinput.Model
	focus   int
	status  string
}

// NewModel builds the interactive model over the shared collections. events
// may be nil when no external-change refresh is wanted.
func NewModel(items *store.Items, prototypes *store.Prototypes, scheduler *notify.Scheduler, clock timeutil.Clock, events <-chan store.Event) Model {
	return Model{
		items:      items,
		prototypes: prototypes,
		scheduler:  scheduler,
		clock:      clock,
		events:     events,
		now:        clock.Now(),
	}
}

// Run starts the interactive UI, refreshing the list when another process
// writes the archive.
func Run(archive *store.DiskArchive, items *store.Items, prototypes *store.Prototypes, scheduler *notify.Scheduler, clock timeutil.Clock) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := archive.Watch(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(items, prototypes, scheduler, clock, events), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForEvent(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitForEvent(m.events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case storeEventMsg:
		if msg.Key == store.KeyItems {
			m.items.Reload()
			if m.cursor >= m.items.Len() && m.cursor > 0 {
				m.cursor = m.items.Len() - 1
			}
		}
		return m, waitForEvent(m.events)
	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.items.Len()-1 {
			m.cursor++
		}
	case "d", "x":
		if removed := m.items.Remove(m.cursor); removed != nil {
			m.scheduler.Unschedule(removed)
			if m.cursor >= m.items.Len() && m.cursor > 0 {
				m.cursor--
			}
		}
	case "a":
		m.startForm()
	}
	return m, nil
}

func (m *Model) startForm() {
	m.session = form.NewSession(m.prototypes, m.clock)
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Placeholder = "Enter product name here"
	m.inputs[fieldDate].Placeholder = layoutISO
	m.focus = fieldName
	m.inputs[m.focus].Focus()
	m.mode = modeForm
	m.status = ""
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.session = nil
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "tab", "down":
		m.applyField(m.focus)
		m.moveFocus(1)
		m.syncInputs()
		return m, nil
	case "shift+tab", "up":
		m.applyField(m.focus)
		m.moveFocus(-1)
		m.syncInputs()
		return m, nil
	case "ctrl+s":
		m.applyField(m.focus)
		m.syncInputs()
		if !m.session.CanSave() {
			m.status = "name and expiration date are required"
			return m, nil
		}
		it, _, err := m.session.Commit()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = m.items.Add(it)
		m.scheduler.Schedule(context.Background(), it)
		m.mode = modeList
		m.session = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

// applyField pushes one input's text into the session, which recomputes the
// opposite side of the date/interval binding.
func (m *Model) applyField(i int) {
	v := strings.TrimSpace(m.inputs[i].Value())
	switch i {
	case fieldName:
		m.session.SetName(v)
	case fieldBarcode:
		if v != m.session.Barcode() {
			m.session.ApplyBarcode(v)
		}
	case fieldDate:
		if v == "" {
			// Leaving the date field empty defaults it to the floor.
			m.session.SetDate(m.session.MinDate())
			return
		}
		if t, err := time.ParseInLocation(layoutISO, v, time.Local); err == nil {
			m.session.SetDate(t)
			m.status = ""
		} else {
			m.status = fmt.Sprintf("invalid date %q, want %s", v, layoutISO)
		}
	case fieldDays:
		m.session.SetDays(parseCounter(v))
	case fieldMonths:
		m.session.SetMonths(parseCounter(v))
	case fieldYears:
		m.session.SetYears(parseCounter(v))
	}
}

// syncInputs writes the session's state back into the inputs. Zero counters
// render as empty fields.
func (m *Model) syncInputs() {
	m.inputs[fieldName].SetValue(m.session.Name())
	m.inputs[fieldBarcode].SetValue(m.session.Barcode())
	if d := m.session.Date(); d != nil {
		m.inputs[fieldDate].SetValue(d.Format(layoutISO))
	} else {
		m.inputs[fieldDate].SetValue("")
	}
	iv := m.session.Interval()
	m.inputs[fieldDays].SetValue(counterText(iv.Days))
	m.inputs[fieldMonths].SetValue(counterText(iv.Months))
	m.inputs[fieldYears].SetValue(counterText(iv.Years))
}

func parseCounter(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func counterText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func (m Model) View() string {
	if m.mode == modeForm {
		return m.viewForm()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Best Before"))
	b.WriteString("\n\n")

	items := m.items.List()
	if len(items) == 0 {
		b.WriteString(faintStyle.Render(" nothing tracked yet"))
		b.WriteString("\n")
	}
	for i, it := range items {
		details := it.Details(m.now)
		switch {
		case !it.ExpiresAt.After(m.now):
			details = expiredStyle.Render(details)
		case it.ExpiresAt.Before(m.now.AddDate(0, 0, 3)):
			details = soonStyle.Render(details)
		}

		prefix := "  "
		line := fmt.Sprintf("%-24s %s  %s", it.Name, it.ExpiresAt.Format(layoutISO), details)
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("a add • d delete • j/k move • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Item"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, m.inputs[i].View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	save := "ctrl+s save"
	if !m.session.CanSave() {
		save = faintStyle.Render(save)
	}
	b.WriteString(faintStyle.Render("enter/tab next field • esc cancel • ") + save)
	b.WriteString("\n")
	return b.String()
}
