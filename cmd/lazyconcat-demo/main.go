// Command lazyconcat-demo visualizes the deferred-concatenation container:
// staged fragments stay in the pending queue (no copying) until a read
// forces materialization into the root buffer.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/lazyconcat/concat"
)

type keyMap struct {
	Append    key.Binding
	Normalize key.Binding
	Slice     key.Binding
	Finalize  key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Append:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "concat staged text")),
		Normalize: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "normalize")),
		Slice:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "slice first half")),
		Finalize:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "done (restart with result)")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

type styleSet struct {
	Title   lipgloss.Style
	Root    lipgloss.Style
	Pending lipgloss.Style
	Input   lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

func defaultStyles() styleSet {
	chip := lipgloss.NewStyle().Padding(0, 1)
	return styleSet{
		Title:   lipgloss.NewStyle().Bold(true),
		Root:    chip.Background(lipgloss.Color("22")).Foreground(lipgloss.Color("255")),
		Pending: chip.Background(lipgloss.Color("237")).Foreground(lipgloss.Color("250")),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

type model struct {
	txt    *concat.Text
	staged []rune
	note   string

	keys   keyMap
	styles styleSet
	width  int
}

func newModel() model {
	return model{
		txt:    concat.NewEmptyText(),
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
		width:  80,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Append):
			m.txt.Concat(string(m.staged))
			m.note = fmt.Sprintf("enqueued %d bytes, nothing copied", len(string(m.staged)))
			m.staged = nil
			return m, nil

		case key.Matches(msg, m.keys.Normalize):
			before := m.txt.Materialized()
			m.txt.Normalize()
			m.note = fmt.Sprintf("normalized: copied %d bytes into root", m.txt.Materialized()-before)
			return m, nil

		case key.Matches(msg, m.keys.Slice):
			end := m.txt.Len() / 2
			s, err := m.txt.Slice(concat.Range{Start: 0, End: end})
			if err != nil {
				m.note = err.Error()
				return m, nil
			}
			m.note = fmt.Sprintf("slice [0,%d) = %q (materialized %d of %d)",
				end, s, m.txt.Materialized(), m.txt.Len())
			return m, nil

		case key.Matches(msg, m.keys.Finalize):
			result := m.txt.Done()
			m.txt = concat.NewText(result)
			m.note = fmt.Sprintf("done: %q is the new root", result)
			return m, nil
		}

		switch msg.Type {
		case tea.KeyRunes:
			m.staged = append(m.staged, msg.Runes...)
		case tea.KeySpace:
			m.staged = append(m.staged, ' ')
		case tea.KeyBackspace:
			if len(m.staged) > 0 {
				m.staged = m.staged[:len(m.staged)-1]
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	chipWidth := max(m.width/4, 12)

	chips := make([]string, 0, 1+m.txt.PendingFragments())
	root, err := m.txt.Slice(concat.Range{Start: 0, End: m.txt.Materialized()})
	if err == nil && root != "" {
		chips = append(chips, m.styles.Root.Render(clip(root, chipWidth)))
	}
	for frag := range m.txt.Pending() {
		chips = append(chips, m.styles.Pending.Render(clip(frag, chipWidth)))
	}
	row := "(empty)"
	if len(chips) > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	}

	status := fmt.Sprintf("materialized %d  pending %d in %d fragments  logical %d",
		m.txt.Materialized(), m.txt.Len()-m.txt.Materialized(),
		m.txt.PendingFragments(), m.txt.Len())

	help := "type to stage · enter concat · ctrl+n normalize · ctrl+s slice · ctrl+d done · ctrl+c quit"

	return m.styles.Title.Render("lazyconcat") + "\n\n" +
		row + "\n\n" +
		m.styles.Input.Render("staged: "+string(m.staged)+"▏") + "\n" +
		m.styles.Status.Render(status) + "\n" +
		m.styles.Status.Render(m.note) + "\n\n" +
		m.styles.Help.Render(help) + "\n"
}

// clip truncates s to w terminal cells, with an ellipsis when cut.
func clip(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
