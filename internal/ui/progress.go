package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"thriftfmt/internal/driver"
)

// maxRows — сколько последних файлов показываем под заголовком.
const maxRows = 8

type progressModel struct {
	title   string
	events  <-chan driver.Progress
	spinner spinner.Model
	prog    progress.Model
	total   int
	recent  []fileItem
	counts  map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path   string
	status string
}

type eventMsg driver.Progress
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch formatting
// progress. The model quits when events is closed.
func NewProgressModel(title string, events <-chan driver.Progress) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		counts:  make(map[string]int),
		width:   80,
	}
}

// RunBatch runs work while rendering its progress to out. work receives the
// observer to pass to driver.FormatPaths.
func RunBatch(title string, out io.Writer, work func(driver.ProgressObserver)) error {
	events := make(chan driver.Progress, 64)
	go func() {
		defer close(events)
		work(func(p driver.Progress) { events <- p })
	}()
	_, err := tea.NewProgram(NewProgressModel(title, events), tea.WithOutput(out), tea.WithInput(nil)).Run()
	// программа могла выйти раньше (ошибка терминала) — дочитываем, чтобы work не встал
	for range events {
	}
	return err
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Progress(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if m.total == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	finished := m.finished()
	header := fmt.Sprintf("%s %d/%d", m.title, finished, m.total)
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.recent {
		name := truncate(item.path, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
	}

	b.WriteString("\n  ")
	b.WriteString(m.summary())
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Progress) tea.Cmd {
	switch ev.Status {
	case driver.FilesQueued:
		m.total = ev.Total
		return nil
	case driver.FileStarted:
		m.push(fileItem{path: ev.Path, status: "formatting"})
		return nil
	case driver.FileDone:
		status := resultLabel(ev.Result)
		m.counts[status]++
		m.push(fileItem{path: ev.Path, status: status})
	}
	if m.total == 0 {
		return nil
	}
	return m.prog.SetPercent(float64(m.finished()) / float64(m.total))
}

// push показывает файл в списке последних; повторный путь обновляется на месте.
func (m *progressModel) push(item fileItem) {
	for i := range m.recent {
		if m.recent[i].path == item.path {
			m.recent[i].status = item.status
			return
		}
	}
	m.recent = append(m.recent, item)
	if len(m.recent) > maxRows {
		m.recent = m.recent[len(m.recent)-maxRows:]
	}
}

func (m *progressModel) finished() int {
	n := 0
	for _, c := range m.counts {
		n += c
	}
	return n
}

func (m *progressModel) summary() string {
	parts := make([]string, 0, 4)
	for _, status := range []string{"changed", "unchanged", "cached", "error"} {
		if c := m.counts[status]; c > 0 {
			parts = append(parts, styleStatus(status).Render(fmt.Sprintf("%d %s", c, status)))
		}
	}
	if len(parts) == 0 {
		return "waiting"
	}
	return strings.Join(parts, ", ")
}

func resultLabel(res *driver.FormatResult) string {
	switch {
	case res == nil:
		return "unchanged"
	case res.Err != nil:
		return "error"
	case res.Cached:
		return "cached"
	case res.Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "unchanged", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "changed":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case "formatting":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// путь интереснее с конца: режем начало
	return "..." + truncateLeft(value, width-3)
}

func truncateLeft(value string, width int) string {
	runes := []rune(value)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}
