// Package tui is the interactive single-screen list. Every mutation
// goes through the store, which persists it immediately; a failed
// save shows up as a notice line while the screen stays usable.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/store"
	"taskpad/internal/ui"
)

// listItem adapts a task to bubbles/list.Item. The ID ties the row
// back to the store; display state is derived, never authoritative.
type listItem struct {
	ID   string
	Text string
	Done bool
}

func (i listItem) FilterValue() string { return i.Text }

// Single-line rendering: checkbox, title, a "> " marker on the
// selected row.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	text := li.Text
	if li.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

type model struct {
	ctx context.Context
	st  *store.Store

	list list.Model

	// Inline add / edit share one text input.
	adding   bool
	editing  bool
	editID   string
	ti       textinput.Model
	inputErr string

	// Last load/save problem, shown under the list.
	notice string

	width, height int
}

// Run starts the screen over an already-loaded store. A non-empty
// notice (e.g. a discarded bad snapshot) is shown until the first
// successful mutation.
func Run(ctx context.Context, st *store.Store, notice string) error {
	p := tea.NewProgram(newModel(ctx, st, notice), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, st *store.Store, notice string) model {
	items := make([]list.Item, 0, st.Len())
	for _, tk := range st.Tasks() {
		items = append(items, listItem{ID: tk.ID, Text: tk.Title, Done: tk.Completed})
	}

	l := list.New(items, itemDelegate{}, 0, 0)
	t := ui.Current()
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task title..."
	ti.CharLimit = 200

	m := model{ctx: ctx, st: st, list: l, ti: ti, notice: notice}
	m.refreshHeader()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wm.Width, wm.Height
		m.resize()
		return m, nil
	}
	if m.adding {
		return m.updateAdding(msg)
	}
	if m.editing {
		return m.updateEditing(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case " ":
			if li, idx, ok := m.selected(); ok {
				tk, toggled, err := m.st.Toggle(m.ctx, li.ID)
				m.report(err)
				if toggled {
					li.Done = tk.Completed
					m.list.SetItem(idx, li)
					m.refreshHeader()
				}
			}
			return m, nil

		case "d":
			if li, idx, ok := m.selected(); ok {
				_, err := m.st.Remove(m.ctx, li.ID)
				m.report(err)
				m.list.RemoveItem(idx)
				m.refreshHeader()
			}
			return m, nil

		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			m.resize()
			return m, m.ti.Focus()

		case "e":
			if li, _, ok := m.selected(); ok {
				m.editing = true
				m.editID = li.ID
				m.ti.SetValue(li.Text)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit task title..."
				m.resize()
				return m, m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			tk, added, err := m.st.Add(m.ctx, m.ti.Value())
			if !added {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			m.report(err)
			m.list.InsertItem(len(m.list.Items()), listItem{ID: tk.ID, Text: tk.Title, Done: tk.Completed})
			m.refreshHeader()
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			tk, renamed, err := m.st.Rename(m.ctx, m.editID, m.ti.Value())
			if !renamed {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			m.report(err)
			if li, idx, ok := m.findByID(m.editID); ok {
				li.Text = tk.Title
				m.list.SetItem(idx, li)
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m model) View() string {
	t := ui.Current()
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new task"
		if m.editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += "  " + t.Error.Render(m.inputErr)
		}
		content += "\n" + t.Border.Render(title+"\n"+m.ti.View())
	}
	if m.notice != "" {
		content += "\n" + t.Error.Render("! "+m.notice)
	}
	return t.Border.Render(content)
}

// report records a failed save for the notice line; a successful one
// clears it.
func (m *model) report(err error) {
	if err != nil {
		m.notice = "save: " + err.Error()
		return
	}
	m.notice = ""
}

func (m *model) refreshHeader() {
	t := ui.Current()
	d, p := m.st.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Tasks"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), m.st.Len(),
	)
}

func (m *model) resize() {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	lh := h - 4
	if m.adding || m.editing {
		lh = h - 8
	}
	m.list.SetSize(w-4, lh)
}

func (m *model) closeInput() {
	m.adding = false
	m.editing = false
	m.editID = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

// selected returns the highlighted item and its index in the full
// item slice. The two differ while a filter is applied, so the index
// is recovered by ID instead of trusting the cursor.
func (m *model) selected() (listItem, int, bool) {
	it := m.list.SelectedItem()
	if it == nil {
		return listItem{}, -1, false
	}
	li, ok := it.(listItem)
	if !ok {
		return listItem{}, -1, false
	}
	return m.findByID(li.ID)
}

func (m *model) findByID(id string) (listItem, int, bool) {
	for i, raw := range m.list.Items() {
		if li, ok := raw.(listItem); ok && li.ID == id {
			return li, i, true
		}
	}
	return listItem{}, -1, false
}
