package tui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/headercommenter/editor"
	"go.jacobcolvin.com/headercommenter/log"
	"go.jacobcolvin.com/headercommenter/workspace"
)

// listedMsg carries a fresh listing of the root directory.
type listedMsg struct {
	err  error
	rows []workspace.Row
	n    int
}

// changedMsg signals that the watcher saw files appear or disappear.
type changedMsg struct{}

// logMsg signals new lines in the log tail.
type logMsg struct{}

// editedMsg reports that the editor process exited.
type editedMsg struct {
	err error
}

// Model is the Bubble Tea model of the browser.
//
// Create instances with [New] and release them with [Model.Close] once the
// program has exited.
type Model struct {
	session *editor.Session
	lister  *workspace.Lister
	watcher *workspace.Watcher
	tail    *log.Tail
	form    *editor.Form
	done    chan struct{}
	lastDir workspace.LastDir
	root    string
	editor  string
	status  string
	rows    []workspace.Row
	once    sync.Once
	cursor  int
	offset  int
	width   int
	height  int
	failed  bool
}

// Option configures a [Model].
type Option func(*Model)

// WithWatcher reloads the listing whenever w reports a change.
func WithWatcher(w *workspace.Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithTail shows the latest line of t in the status bar.
func WithTail(t *log.Tail) Option {
	return func(m *Model) {
		m.tail = t
	}
}

// WithLastDir records the root in l after every successful listing.
func WithLastDir(l workspace.LastDir) Option {
	return func(m *Model) {
		m.lastDir = l
	}
}

// WithEditor sets the editor command line used for the header form.
func WithEditor(cmd string) Option {
	return func(m *Model) {
		m.editor = cmd
	}
}

// New creates a [Model] browsing root.
func New(root string, session *editor.Session, lister *workspace.Lister, opts ...Option) *Model {
	m := &Model{
		root:    root,
		session: session,
		lister:  lister,
		editor:  editor.DefaultEditor,
		done:    make(chan struct{}),
		width:   80,
		height:  24,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run runs m as a full-screen program until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, m *Model) error {
	defer m.Close()

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	return nil
}

// Close stops the background commands of m and removes a pending header
// form. Idempotent.
func (m *Model) Close() {
	m.once.Do(func() {
		close(m.done)

		if m.form != nil {
			//nolint:errcheck // Best-effort cleanup of the temporary form.
			m.form.Close()
		}
	})
}

// Init lists the root and starts listening for watcher and log updates.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.list(), m.waitChange(), m.waitLog())
}

// Update handles key presses, resizes and background results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.key(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()

	case listedMsg:
		m.listed(msg)

	case changedMsg:
		return m, tea.Batch(m.list(), m.waitChange())

	case logMsg:
		return m, m.waitLog()

	case editedMsg:
		m.edited(msg)
	}

	return m, nil
}

// View renders the browser.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

func (m *Model) key(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()

		return tea.Quit

	case "up", "k":
		m.move(-1)

	case "down", "j":
		m.move(1)

	case "enter":
		m.open()

	case "s":
		m.save()

	case "e":
		return m.edit()

	case "r":
		return m.list()
	}

	return nil
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}

	m.cursor = max(0, min(len(m.rows)-1, m.cursor+delta))
	m.scroll()
}

// scroll keeps the cursor inside the visible part of the tree.
func (m *Model) scroll() {
	h := m.listHeight()

	if m.cursor < m.offset {
		m.offset = m.cursor
	}

	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}

	m.offset = max(0, m.offset)
}

func (m *Model) selected() (workspace.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return workspace.Row{}, false
	}

	return m.rows[m.cursor], true
}

func (m *Model) open() {
	row, ok := m.selected()
	if !ok || row.IsDir() {
		return
	}

	err := m.session.Open(row.Path)
	if err != nil {
		m.fail(err)

		return
	}

	m.notify(fmt.Sprintf("opened %s", row.Path))
}

func (m *Model) save() {
	err := m.session.Save()
	if err != nil {
		m.fail(err)

		return
	}

	m.notify(fmt.Sprintf("saved %s", m.session.Path()))
}

func (m *Model) edit() tea.Cmd {
	if m.session.Path() == "" {
		m.fail(editor.ErrNoFile)

		return nil
	}

	if m.form != nil {
		return nil
	}

	form, err := editor.NewForm(m.session.Record())
	if err != nil {
		m.fail(err)

		return nil
	}

	m.form = form

	cmd := form.Command(context.Background(), m.editor)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editedMsg{err: err}
	})
}

func (m *Model) edited(msg editedMsg) {
	form := m.form
	if form == nil {
		return
	}

	m.form = nil

	defer func() {
		err := form.Close()
		if err != nil {
			slog.Debug("remove header form", slog.Any("err", err))
		}
	}()

	if msg.err != nil {
		m.fail(fmt.Errorf("%w: %w", editor.ErrForm, msg.err))

		return
	}

	rec, err := form.Read()
	if err != nil {
		m.fail(err)

		return
	}

	m.session.Replace(rec)
	m.notify("header updated; press s to save")
}

func (m *Model) list() tea.Cmd {
	root, lister := m.root, m.lister

	return func() tea.Msg {
		entries, err := lister.List(root)
		if err != nil {
			return listedMsg{err: err}
		}

		return listedMsg{rows: workspace.BuildTree(entries).Flatten(), n: len(entries)}
	}
}

func (m *Model) listed(msg listedMsg) {
	if msg.err != nil {
		m.fail(msg.err)

		return
	}

	m.rows = msg.rows
	m.move(0)

	if msg.n == 0 {
		m.cursor, m.offset = 0, 0
		m.status, m.failed = fmt.Sprintf("no matching files in %s", m.root), false

		slog.Info("no matching files", slog.String("dir", m.root))

		return
	}

	err := m.lastDir.Save(m.root)
	if err != nil {
		slog.Warn("remember directory", slog.Any("err", err))
	}
}

func (m *Model) waitChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	changes, closed, done := m.watcher.Changes(), m.watcher.Done(), m.done

	return func() tea.Msg {
		select {
		case <-changes:
			return changedMsg{}
		case <-closed:
			return nil
		case <-done:
			return nil
		}
	}
}

func (m *Model) waitLog() tea.Cmd {
	if m.tail == nil {
		return nil
	}

	updated, done := m.tail.Updated(), m.done

	return func() tea.Msg {
		select {
		case <-updated:
			return logMsg{}
		case <-done:
			return nil
		}
	}
}

func (m *Model) notify(s string) {
	m.status = s
	m.failed = false

	slog.Debug(s)
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.failed = true

	slog.Debug("browser action failed", slog.Any("err", err))
}
