package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/univar/solve"
)

const (
	plotWidth   = 78
	plotHeight  = 10
	plotSamples = 156
)

type TickMsg time.Time

// Model replays a recorded solver trace step by step.
type Model struct {
	problem string
	method  string

	f      solve.Func
	lo, hi float64

	steps []solve.Step
	final solve.Result

	head     int
	playing  bool
	showHelp bool

	curve []float64
}

// NewModel prepares a replay of the given trace. The function is sampled
// once up front; replay itself never invokes it again.
func NewModel(problem, method string, f solve.Func, lo, hi float64, steps []solve.Step, final solve.Result) Model {
	curve := make([]float64, plotSamples)
	for i := range curve {
		x := lo + (hi-lo)*float64(i)/float64(plotSamples-1)
		curve[i] = f(x)
	}
	return Model{
		problem: problem,
		method:  method,
		f:       f,
		lo:      lo,
		hi:      hi,
		steps:   steps,
		final:   final,
		playing: true,
		curve:   curve,
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/8, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "[":
			if m.head > 0 {
				m.head--
			}
			m.playing = false
		case "]":
			if m.head < len(m.steps)-1 {
				m.head++
			}
			m.playing = false
		case "r":
			m.head = 0
			m.playing = true
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.playing && m.head < len(m.steps)-1 {
			m.head++
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("univar replay: %s / %s", m.problem, m.method)))
	b.WriteString("\n")

	graph := asciigraph.Plot(m.curve,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("f on [%.4g, %.4g]", m.lo, m.hi)),
	)
	b.WriteString(GraphStyle.Render(graph))
	b.WriteString("\n\n")

	if len(m.steps) == 0 {
		b.WriteString(ValueStyle.Render("no recorded iterations"))
	} else {
		st := m.steps[m.head]
		b.WriteString(LabelStyle.Render("step"))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%d / %d", m.head+1, len(m.steps))))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("x"))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.15g", st.X)))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("f(x)"))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.6e", st.FX)))
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("width"))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.6e", st.Width)))
		b.WriteString("\n")

		if conv := m.convergence(); len(conv) >= 2 {
			b.WriteString(GraphStyle.Render(asciigraph.Plot(conv,
				asciigraph.Height(6),
				asciigraph.Width(plotWidth),
				asciigraph.Caption("log10 width"),
			)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("status"))
	b.WriteString(RenderStatus(m.final.Status.String(), m.final.Status.Ok()))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(HelpStyle.Render("space pause/resume · [ ] scrub · r restart · q quit"))
	} else {
		b.WriteString(HelpStyle.Render("? help · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

// convergence returns log10 of the recorded widths up to the play head.
func (m Model) convergence() []float64 {
	out := make([]float64, 0, m.head+1)
	for _, st := range m.steps[:m.head+1] {
		if st.Width > 0 {
			out = append(out, math.Log10(st.Width))
		}
	}
	return out
}
