package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"koyomi/internal/clipboard"
	"koyomi/internal/clipparse"
	"koyomi/internal/eventbody"
	"koyomi/internal/history"
	"koyomi/internal/timeparse"
)

const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldCount
)

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")

	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

type importMsg struct {
	parsed *clipparse.Parsed
	err    error
}

type registerMsg struct {
	entry history.Entry
	err   error
}

type captureModel struct {
	app *App

	inputs  [fieldCount]textinput.Model
	focus   int
	allDay  bool
	parsed  *clipparse.Parsed
	status  string
	errText string

	created *history.Entry
	busy    bool

	winW int
	winH int
}

func startCapture(app *App) error {
	model := newCaptureModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(captureModel); ok && m.created != nil {
		fmt.Println("📅 Event created:", m.created.Summary)
		if m.created.HTMLLink != "" {
			fmt.Println("   " + gray(m.created.HTMLLink))
		}
	}
	return nil
}

func newCaptureModel(app *App) captureModel {
	m := captureModel{app: app}
	now := app.Now()

	title := textinput.New()
	title.Prompt = ""
	title.SetValue(app.Config.DefaultTitle)
	title.Focus()

	start := textinput.New()
	start.Prompt = ""
	start.SetValue(timeparse.FormatDateTime(now))

	end := textinput.New()
	end.Prompt = ""
	end.SetValue(timeparse.FormatDateTime(now.Add(time.Hour)))

	m.inputs[fieldTitle] = title
	m.inputs[fieldStart] = start
	m.inputs[fieldEnd] = end
	return m
}

func (m captureModel) Init() tea.Cmd {
	return tea.Batch(m.importCmd(), textinput.Blink)
}

// importCmd runs the read→parse sequence. Both the initial activation and
// the ctrl+r re-import go through here; a failure is reported once in the
// status line and never retried.
func (m captureModel) importCmd() tea.Cmd {
	now := m.app.Now
	return func() tea.Msg {
		raw, err := clipboard.Read()
		if err != nil {
			return importMsg{err: err}
		}
		parsed, ok := clipparse.Parse(raw, now())
		if !ok {
			return importMsg{err: fmt.Errorf("no date or time found in clipboard text")}
		}
		return importMsg{parsed: parsed}
	}
}

func (m captureModel) registerCmd(in eventbody.Input) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		event, err := eventbody.Build(in, app.Config.Timezone, app.Location)
		if err != nil {
			return registerMsg{err: err}
		}
		entry, err := registerEvent(app, event, in.AllDay)
		return registerMsg{entry: entry, err: err}
	}
}

// applyParsed merges the suggestion into the form. This is the only place
// form fields are written from a parse result; typing afterwards is never
// clobbered unless the user re-imports explicitly.
func (m *captureModel) applyParsed(p *clipparse.Parsed) {
	m.parsed = p
	m.allDay = p.AllDay
	if p.Title != "" {
		m.inputs[fieldTitle].SetValue(p.Title)
	}
	m.inputs[fieldStart].SetValue(p.Start)
	m.inputs[fieldEnd].SetValue(m.resolveEnd(p))
	m.status = "imported from clipboard"
	m.errText = ""
}

// resolveEnd fills the end field, defaulting to start+1 day (all-day) or
// start+1 hour when the parse produced no end.
func (m *captureModel) resolveEnd(p *clipparse.Parsed) string {
	if p.End != "" {
		return p.End
	}
	if p.AllDay {
		if start, err := timeparse.ParseDateOnly(p.Start, m.app.Location); err == nil {
			return timeparse.FormatDate(start.AddDate(0, 0, 1))
		}
		return ""
	}
	if start, err := timeparse.ParseDateTime(p.Start, m.app.Location); err == nil {
		return timeparse.FormatDateTime(start.Add(time.Hour))
	}
	return ""
}

// toggleAllDay converts the start/end fields between the two literal
// formats and re-applies the end default for the new mode.
func (m *captureModel) toggleAllDay() {
	m.allDay = !m.allDay
	loc := m.app.Location
	if m.allDay {
		start, err := timeparse.ParseDateTime(m.inputs[fieldStart].Value(), loc)
		if err != nil {
			start = m.app.Now()
		}
		m.inputs[fieldStart].SetValue(timeparse.FormatDate(start))
		m.inputs[fieldEnd].SetValue(timeparse.FormatDate(start.AddDate(0, 0, 1)))
		return
	}
	day, err := timeparse.ParseDateOnly(m.inputs[fieldStart].Value(), loc)
	if err != nil {
		day = m.app.Now()
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, loc)
	m.inputs[fieldStart].SetValue(timeparse.FormatDateTime(start))
	m.inputs[fieldEnd].SetValue(timeparse.FormatDateTime(start.Add(time.Hour)))
}

func (m *captureModel) setFocus(focus int) tea.Cmd {
	m.focus = focus
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winW = msg.Width
		m.winH = msg.Height
		return m, nil

	case importMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.applyParsed(msg.parsed)
		return m, nil

	case registerMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		entry := msg.entry
		m.created = &entry
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+r":
			m.status = "importing..."
			return m, m.importCmd()
		case "ctrl+a":
			m.toggleAllDay()
			return m, nil
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.errText = ""
			m.status = "registering..."
			return m, m.registerCmd(eventbody.Input{
				Title:     m.inputs[fieldTitle].Value(),
				AllDay:    m.allDay,
				StartText: m.inputs[fieldStart].Value(),
				EndText:   m.inputs[fieldEnd].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m captureModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("koyomi · clipboard capture"))
	b.WriteString("\n\n")

	if m.parsed != nil {
		b.WriteString(previewStyle.Render(renderHighlights(m.parsed.Text, m.parsed.Highlights)))
		b.WriteString("\n\n")
	}

	allDayMark := "[ ]"
	if m.allDay {
		allDayMark = "[x]"
	}
	startLabel := "Start (" + timeparse.DateTimeLayout + ")"
	endLabel := "End   (" + timeparse.DateTimeLayout + ")"
	if m.allDay {
		startLabel = "Start (" + timeparse.DateOnlyLayout + ")"
		endLabel = "End   (" + timeparse.DateOnlyLayout + ")"
	}

	b.WriteString(labelStyle.Render("Title") + "\n")
	b.WriteString(m.inputs[fieldTitle].View() + "\n\n")
	b.WriteString(labelStyle.Render(startLabel) + "\n")
	b.WriteString(m.inputs[fieldStart].View() + "\n\n")
	b.WriteString(labelStyle.Render(endLabel) + "\n")
	b.WriteString(m.inputs[fieldEnd].View() + "\n\n")
	b.WriteString(labelStyle.Render("All-day ") + allDayMark + "\n\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render("✗ "+m.errText) + "\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(statusStyle.Render("enter register · ctrl+r re-import · ctrl+a all-day · tab next field · esc quit"))
	return b.String()
}
