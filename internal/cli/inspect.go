package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive gadget browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Browse the gadgets of a Pauli graph",
		Long: `Browse the gadgets of a circuit's Pauli graph in topological order.

The panel below the list shows the gadgets that must come before and after
the selected one. Keys: ↑/↓ or j/k move, p and s jump to the first
predecessor or successor, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), cmd, args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, cmd *cobra.Command, input string) error {
	src, name, err := readSource(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	circ, err := pipeline.Parse(ctx, src, name)
	if err != nil {
		return err
	}
	pg, err := pipeline.Lower(circ)
	if err != nil {
		return err
	}
	m, err := newInspectModel(name, pg)
	if err != nil {
		return err
	}
	if len(m.order) == 0 {
		printInfo(c.Err, "%s has no rotation gadgets; every gate is Clifford", name)
		return nil
	}
	_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(c.Out)).Run()
	return err
}

// =============================================================================
// inspectModel - Interactive gadget browser
// =============================================================================

// inspectModel is the bubbletea model for browsing a Pauli graph.
type inspectModel struct {
	title  string
	pg     *pauligraph.Graph
	order  []pauligraph.Vertex
	index  map[pauligraph.Vertex]int
	cursor int
	offset int
	height int
}

func newInspectModel(title string, pg *pauligraph.Graph) (inspectModel, error) {
	order, err := pg.TopologicalOrder()
	if err != nil {
		return inspectModel{}, err
	}
	index := make(map[pauligraph.Vertex]int, len(order))
	for i, v := range order {
		index[v] = i
	}
	return inspectModel{title: title, pg: pg, order: order, index: index, height: 15}, nil
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m = m.moveTo(m.cursor - 1)
		case "down", "j":
			m = m.moveTo(m.cursor + 1)
		case "home", "g":
			m = m.moveTo(0)
		case "end", "G":
			m = m.moveTo(len(m.order) - 1)
		case "p":
			if preds := m.pg.Predecessors(m.current()); len(preds) > 0 {
				m = m.moveTo(m.index[preds[0]])
			}
		case "s":
			if succs := m.pg.Successors(m.current()); len(succs) > 0 {
				m = m.moveTo(m.index[succs[0]])
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-10, 5)
		m = m.moveTo(m.cursor)
	}
	return m, nil
}

// moveTo places the cursor at i, clamped to the list, and scrolls it into
// view.
func (m inspectModel) moveTo(i int) inspectModel {
	m.cursor = min(max(i, 0), len(m.order)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	return m
}

func (m inspectModel) current() pauligraph.Vertex { return m.order[m.cursor] }

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pauli graph: " + m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  p/s predecessor/successor  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.order))
	for i := m.offset; i < end; i++ {
		v := m.order[i]
		g, _ := m.pg.Gadget(v)
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-5s %-24v %v", cursor, fmt.Sprintf("v%d", v), g.Tensor, g.Angle)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	v := m.current()
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  before: %s\n", m.vertexList(m.pg.Predecessors(v)))
	fmt.Fprintf(&b, "  after:  %s\n", m.vertexList(m.pg.Successors(v)))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.order))))

	return b.String()
}

func (m inspectModel) vertexList(vs []pauligraph.Vertex) string {
	if len(vs) == 0 {
		return listDimStyle.Render("none")
	}
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = fmt.Sprintf("v%d", v)
	}
	return strings.Join(names, ", ")
}
