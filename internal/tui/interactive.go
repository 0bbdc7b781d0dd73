package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/simpson/internal/chart"
	"github.com/san-kum/simpson/internal/experiment"
	"github.com/san-kum/simpson/internal/input"
	"github.com/san-kum/simpson/internal/models"
	"github.com/san-kum/simpson/internal/quad"
	"github.com/san-kum/simpson/internal/report"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type choice int

const (
	choiceFunction choice = iota
	choiceManual
	choiceFile
	choiceStudy
)

var choices = []struct {
	name string
	desc string
}{
	{"function", "sample the heat transfer rate"},
	{"manual", "enter data points by hand"},
	{"file", "read x y pairs from a file"},
	{"study", "convergence table and chart"},
}

type state int

const (
	stateMenu state = iota
	stateParams
	stateManual
	stateFile
	stateResult
)

type model struct {
	state  state
	cursor int
	choice choice

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	rule        quad.Rule

	// manual entry and file path share the text buffer
	text   string
	manual []string

	integrand models.Integrand
	points    input.Points
	result    *experiment.Result
	study     *experiment.StudyResult
	running   bool
	err       error

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state:      stateMenu,
		params:     map[string]float64{"t_start": 0, "t_end": 8, "intervals": 8},
		paramNames: []string{"t_start", "t_end", "intervals"},
		rule:       quad.RuleAuto,
		integrand:  models.NewHeatTransfer(),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type studyMsg struct {
	res *experiment.StudyResult
	err error
}

func runStudy(s *experiment.Study) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Run(context.Background())
		return studyMsg{res: res, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case studyMsg:
		m.running = false
		m.study, m.err = msg.res, msg.err
		m.state = stateResult
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateManual:
		return m.manualKey(msg)
	case stateFile:
		return m.fileKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choice = choice(m.cursor)
		m.err = nil
		m.text = ""
		switch m.choice {
		case choiceFunction, choiceStudy:
			m.state = stateParams
			m.paramCursor = 0
		case choiceManual:
			m.manual = nil
			m.state = stateManual
		case choiceFile:
			m.state = stateFile
		}
	}
	return m, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.params[m.paramNames[m.paramCursor]] = v
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.params[m.paramNames[m.paramCursor]], 'f', -1, 64)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "r":
		m.rule = (m.rule + 1) % quad.Rule(len(quad.RuleNames()))
	case "s":
		if m.choice == choiceStudy {
			s := experiment.NewHeatStudy()
			s.A, s.B = m.params["t_start"], m.params["t_end"]
			m.running = true
			m.err = nil
			return m, runStudy(s)
		}
		pts, err := input.FromFunction(m.integrand, m.params["t_start"], m.params["t_end"], int(m.params["intervals"]))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.integrate(pts, true)
	}
	return m, nil
}

// adjust nudges the selected parameter; intervals move by whole steps.
func (m *model) adjust(dir float64) {
	name := m.paramNames[m.paramCursor]
	if name == "intervals" {
		if v := m.params[name] + dir; v >= 1 {
			m.params[name] = v
		}
		return
	}
	m.params[name] += dir * 0.5
}

func (m model) manualKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
	case "enter":
		if strings.TrimSpace(m.text) == "" {
			return m, nil
		}
		// a lone pair is fine here; only malformed text is rejected
		if _, err := input.ParsePairs([]string{m.text}); err != nil && !errors.Is(err, input.ErrTooFewPoints) {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.manual = append(m.manual, strings.TrimSpace(m.text))
		m.text = ""
	case "ctrl+u":
		if len(m.manual) > 0 {
			m.manual = m.manual[:len(m.manual)-1]
		}
	case "tab", "ctrl+d":
		pts, err := input.ParsePairs(m.manual)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.integrate(pts, false)
	case "backspace":
		if len(m.text) > 0 {
			m.text = m.text[:len(m.text)-1]
		}
	default:
		m.typeRunes(msg)
	}
	return m, nil
}

func (m model) fileKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
	case "enter":
		pts, err := input.LoadFile(strings.TrimSpace(m.text))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.integrate(pts, false)
	case "backspace":
		if len(m.text) > 0 {
			m.text = m.text[:len(m.text)-1]
		}
	default:
		m.typeRunes(msg)
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter", "m":
		m.state = stateMenu
		m.result = nil
		m.study = nil
		m.err = nil
	}
	return m, nil
}

func (m *model) typeRunes(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		m.text += string(msg.Runes)
	case tea.KeySpace:
		m.text += " "
	}
}

func (m *model) integrate(pts input.Points, withExact bool) {
	res, err := experiment.Integrate(pts.X, pts.Y, m.rule)
	if err != nil {
		m.err = err
		return
	}
	if withExact {
		if exact, ok := m.integrand.Exact(pts.X[0], pts.X[len(pts.X)-1]); ok {
			res.WithExact(exact)
		}
	}
	m.points = pts
	m.result = res
	m.study = nil
	m.err = nil
	m.state = stateResult
}

func (m model) View() string {
	var body string
	switch m.state {
	case stateMenu:
		body = m.viewMenu()
	case stateParams:
		body = m.viewParams()
	case stateManual:
		body = m.viewManual()
	case stateFile:
		body = m.viewFile()
	case stateResult:
		body = m.viewResult()
	}
	if m.err != nil {
		body += "\n" + red.Render("      "+m.err.Error()) + "\n"
	}
	return body
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("s i m p s o n ' s   r u l e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, c := range choices {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", c.name)) + dim.Render(c.desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", c.name)) + dimmer.Render(c.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter choose   q quit") + "\n")
	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(choices[m.choice].name) + "  " + dim.Render(m.integrand.Describe()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")

	for i, name := range m.paramNames {
		if m.choice == choiceStudy && name == "intervals" {
			continue
		}
		val := fmt.Sprintf("%8.3f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}
	if m.choice == choiceStudy {
		b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", "n")) + dim.Render(fmt.Sprint(experiment.DefaultIntervals)) + "\n")
	} else {
		b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", "rule")) + magenta.Render(m.rule.String()) + "\n")
	}

	b.WriteString("\n")
	if m.running {
		b.WriteString(dim.Render("      running...") + "\n")
	}
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  r rule  s run  esc back") + "\n")
	return b.String()
}

func (m model) viewManual() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("manual data points") + "  " + dim.Render("format: x y") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")

	for i, p := range m.manual {
		b.WriteString(fmt.Sprintf("        %s %s\n", dim.Render(fmt.Sprintf("%3d", i+1)), white.Render(p)))
	}
	b.WriteString("      " + cyan.Render("▸ ") + magenta.Render(m.text+"▋") + "\n")

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter add  ctrl+u undo  tab integrate  esc back") + "\n")
	return b.String()
}

func (m model) viewFile() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("data file") + "  " + dim.Render("one \"x y\" pair per line") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")
	b.WriteString("      " + cyan.Render("▸ ") + magenta.Render(m.text+"▋") + "\n")
	b.WriteString("\n")
	b.WriteString(dim.Render("      enter load  esc back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n")

	switch {
	case m.study != nil:
		b.WriteString(report.Table("Convergence", m.study.Table))
		b.WriteString("\n")
		b.WriteString(report.Checks(m.study.Table, m.study.Exact))
		if fig, err := chart.Build(m.study.Table); err == nil {
			term := chart.NewTerminal()
			term.Width = m.chartWidth()
			b.WriteString("\n")
			b.WriteString(term.String(fig))
		}
	case m.result != nil:
		b.WriteString(report.Result(m.result))
		b.WriteString("\n\n")
		b.WriteString(report.Points(m.points.X, m.points.Y, 10))
		if len(m.points.Y) > 1 {
			b.WriteString("\n")
			b.WriteString(asciigraph.Plot(m.points.Y,
				asciigraph.Width(m.chartWidth()),
				asciigraph.Height(8),
				asciigraph.Caption("f(x) at the sample points"),
				asciigraph.SeriesColors(asciigraph.Blue),
			))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter menu  q quit") + "\n")
	return b.String()
}

func (m model) chartWidth() int {
	w := m.width - 16
	if w < 40 {
		w = 40
	}
	return w
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
