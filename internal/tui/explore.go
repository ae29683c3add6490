package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/neurodyn/internal/analysis"
	"github.com/san-kum/neurodyn/internal/neuro"
	"github.com/san-kum/neurodyn/internal/viz"
)

// Explorer is an interactive parameter explorer: it re-evaluates the
// flow curve and its fixed points after every parameter change. No time
// stepping happens here; every frame is a fresh dfun evaluation.
type explorer struct {
	dyn       neuro.Model
	tunable   neuro.Configurable
	modelName string

	names  []string
	cursor int

	editing bool
	editBuf string

	coupling float64
	local    float64

	gridMin   float64
	gridMax   float64
	gridSteps int

	plot string
	eqs  []analysis.Equilibrium
	errs string

	width  int
	height int
}

// extra rows appended after the model's own parameters.
const (
	rowCoupling = "coupling"
	rowLocal    = "local"
)

func NewExplorer(dyn neuro.Model, modelName string, gridMin, gridMax float64, gridSteps int) (tea.Model, error) {
	tunable, ok := dyn.(neuro.Configurable)
	if !ok {
		return nil, fmt.Errorf("model %s does not expose parameters", modelName)
	}

	names := make([]string, 0, len(tunable.GetParams())+2)
	for name := range tunable.GetParams() {
		names = append(names, name)
	}
	sort.Strings(names)
	names = append(names, rowCoupling, rowLocal)

	e := explorer{
		dyn:       dyn,
		tunable:   tunable,
		modelName: modelName,
		names:     names,
		gridMin:   gridMin,
		gridMax:   gridMax,
		gridSteps: gridSteps,
		width:     80,
		height:    24,
	}
	e.refresh()
	return e, nil
}

func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (e explorer) Init() tea.Cmd { return nil }

func (e explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.refresh()
		return e, nil
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e explorer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if e.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(strings.TrimSpace(e.editBuf), 64); err == nil {
				e.setCurrent(v)
			}
			e.editing = false
			e.editBuf = ""
			e.refresh()
		case "esc":
			e.editing = false
			e.editBuf = ""
		case "backspace":
			if len(e.editBuf) > 0 {
				e.editBuf = e.editBuf[:len(e.editBuf)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && strings.ContainsAny(s, "0123456789.-+e") {
				e.editBuf += s
			}
		}
		return e, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.names)-1 {
			e.cursor++
		}
	case "left", "h":
		e.nudge(-1)
		e.refresh()
	case "right", "l":
		e.nudge(+1)
		e.refresh()
	case "enter", "e":
		e.editing = true
		e.editBuf = ""
	}
	return e, nil
}

func (e *explorer) current() float64 {
	switch e.names[e.cursor] {
	case rowCoupling:
		return e.coupling
	case rowLocal:
		return e.local
	default:
		return e.tunable.GetParams()[e.names[e.cursor]]
	}
}

func (e *explorer) setCurrent(v float64) {
	switch e.names[e.cursor] {
	case rowCoupling:
		e.coupling = v
	case rowLocal:
		e.local = v
	default:
		e.tunable.SetParam(e.names[e.cursor], v)
	}
}

// nudge moves the selected value by 1% of its magnitude, or a small
// absolute step near zero.
func (e *explorer) nudge(dir int) {
	v := e.current()
	step := 0.01 * v
	if step < 0 {
		step = -step
	}
	if step < 1e-3 {
		step = 1e-3
	}
	e.setCurrent(v + float64(dir)*step)
}

func (e *explorer) refresh() {
	plotWidth := e.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}
	plotHeight := e.height - len(e.names) - 10
	if plotHeight < 6 {
		plotHeight = 6
	}

	curve, err := analysis.Flow(e.dyn, 0, e.gridMin, e.gridMax, e.gridSteps, e.coupling, e.local)
	if err != nil {
		e.errs = err.Error()
		return
	}
	eqs, err := analysis.Equilibria(e.dyn, 0, e.gridMin, e.gridMax, e.gridSteps, e.coupling, e.local)
	if err != nil {
		e.errs = err.Error()
		return
	}

	e.errs = ""
	e.eqs = eqs
	e.plot = viz.PlotCurve(curve, "dS/dt vs S", plotWidth, plotHeight)
}

func (e explorer) View() string {
	var sb strings.Builder

	sb.WriteString(viz.Title.Render(fmt.Sprintf(" %s parameter explorer", e.modelName)))
	sb.WriteString("\n\n")

	params := e.tunable.GetParams()
	for i, name := range e.names {
		cursor := "  "
		if i == e.cursor {
			cursor = viz.Accent.Render("> ")
		}

		var val float64
		switch name {
		case rowCoupling:
			val = e.coupling
		case rowLocal:
			val = e.local
		default:
			val = params[name]
		}

		line := fmt.Sprintf("%s%s %s", cursor,
			viz.Label.Render(fmt.Sprintf("%-10s", name)),
			viz.Value.Render(fmt.Sprintf("%.6g", val)))
		if e.editing && i == e.cursor {
			line += viz.Accent.Render(fmt.Sprintf("  -> %s_", e.editBuf))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if e.errs != "" {
		sb.WriteString(viz.Warn.Render(e.errs))
		sb.WriteString("\n")
	} else {
		sb.WriteString(e.plot)
		sb.WriteString("\n")
		sb.WriteString(viz.FormatEquilibria(e.eqs))
	}

	sb.WriteString("\n")
	sb.WriteString(viz.Hint.Render(" ↑/↓ select · ←/→ nudge · enter edit · q quit"))
	sb.WriteString("\n")
	return sb.String()
}
