package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Bambou-Dev/UnrealLogsReader/internal/config"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/export"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/filter"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/logfile"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/model"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/tui/contextpane"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/tui/filteroverlay"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/tui/logpane"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/ui"
	"github.com/Bambou-Dev/UnrealLogsReader/internal/watcher"
)

// App is the top-level Bubble Tea model. It owns the entry store for the
// lifetime of one loaded file and is the only place where the filtered view
// is recomputed, so the filtered-view/selection coupling lives here.
type App struct {
	cfg  *config.Config
	path string

	store     *logfile.Store
	filterCfg filter.Config
	filtered  []int

	logPane       logpane.Model
	contextPane   contextpane.Model
	filterOverlay filteroverlay.Model
	overlayActive bool

	// changes delivers watch events when --watch is on; nil otherwise.
	changes <-chan watcher.Event

	width    int
	height   int
	status   string
	showHelp bool
}

func NewApp(cfg *config.Config, path string, changes <-chan watcher.Event) App {
	filterCfg := filter.Config{
		ShowErrors:     cfg.ShowErrors,
		ShowWarnings:   cfg.ShowWarnings,
		ShowDisplay:    cfg.ShowDisplay,
		ShowDuplicates: cfg.ShowDuplicates,
		Category:       model.CategoryAll,
	}
	return App{
		cfg:         cfg,
		path:        path,
		filterCfg:   filterCfg,
		logPane:     logpane.New(),
		contextPane: contextpane.New(cfg.ContextRadius),
		changes:     changes,
		status:      "Loading " + path + "...",
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadFile()}
	if a.changes != nil {
		cmds = append(cmds, a.waitForChange())
	}
	return tea.Batch(cmds...)
}

// --- Commands ---

func (a App) loadFile() tea.Cmd {
	path := a.path
	return func() tea.Msg {
		store, err := logfile.Load(path)
		return ui.FileLoadedMsg{Path: path, Store: store, Err: err}
	}
}

func (a App) waitForChange() tea.Cmd {
	changes := a.changes
	return func() tea.Msg {
		ev, ok := <-changes
		if !ok {
			return ui.WatchClosedMsg{}
		}
		return ui.FileChangedMsg{Path: ev.Path}
	}
}

func (a App) copySelection() tea.Cmd {
	lines := a.logPane.SelectedLines()
	if len(lines) == 0 {
		return func() tea.Msg { return ui.StatusMsg{Text: "Nothing selected"} }
	}
	return func() tea.Msg {
		return ui.CopiedMsg{Lines: len(lines), Err: export.Copy(lines)}
	}
}

// applyFilters recomputes the filtered view and hands it to the log pane,
// which drops the selection in the same call. No other code path touches
// either.
func (a *App) applyFilters() {
	if a.store == nil {
		return
	}
	a.filtered = filter.Apply(a.store.Entries, a.filterCfg)
	a.logPane.SetData(a.store, a.filtered)
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return &a, nil

	case ui.FileLoadedMsg:
		a.store = msg.Store
		a.contextPane.SetStore(msg.Store)
		a.applyFilters()
		if msg.Err != nil {
			a.status = fmt.Sprintf("Load failed: %v", msg.Err)
		} else {
			a.status = fmt.Sprintf("Loaded %d entries from %s", msg.Store.Len(), msg.Path)
		}
		return &a, nil

	case ui.FileChangedMsg:
		a.status = "File changed, reloading..."
		return &a, tea.Batch(a.loadFile(), a.waitForChange())

	case ui.WatchClosedMsg:
		a.changes = nil
		return &a, nil

	case ui.CopiedMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("Copy failed: %v", msg.Err)
		} else {
			a.status = fmt.Sprintf("Copied %d lines to clipboard", msg.Lines)
		}
		return &a, nil

	case ui.StatusMsg:
		a.status = msg.Text
		return &a, nil

	case logpane.ActivatedMsg:
		a.contextPane.Focus(msg.Seq)
		return &a, nil

	case filteroverlay.ResultMsg:
		a.overlayActive = false
		if msg.Applied {
			a.filterCfg = msg.Filter
			a.applyFilters()
			a.status = fmt.Sprintf("Filters applied, %d entries visible", len(a.filtered))
		}
		return &a, nil

	case tea.KeyMsg:
		if a.overlayActive {
			var cmd tea.Cmd
			a.filterOverlay, cmd = a.filterOverlay.Update(msg)
			return &a, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Quit):
			return &a, tea.Quit

		case key.Matches(msg, ui.Keys.Help):
			a.showHelp = !a.showHelp
			return &a, nil

		case key.Matches(msg, ui.Keys.Filter):
			categories := []string{model.CategoryAll}
			if a.store != nil {
				categories = a.store.Categories
			}
			a.filterOverlay = filteroverlay.New(categories, a.filterCfg)
			a.filterOverlay.SetSize(a.width, a.height)
			a.overlayActive = true
			return &a, nil

		case key.Matches(msg, ui.Keys.Reload):
			a.status = "Reloading..."
			return &a, a.loadFile()

		case key.Matches(msg, ui.Keys.Copy):
			return &a, a.copySelection()

		case key.Matches(msg, ui.Keys.Category):
			if e := a.logPane.CursorEntry(); e != nil {
				a.filterCfg.Category = e.Category
				a.applyFilters()
				a.status = "Filtered to category " + e.Category
			}
			return &a, nil
		}

		var cmd tea.Cmd
		a.logPane, cmd = a.logPane.Update(msg)
		return &a, cmd
	}

	return &a, nil
}

// --- View ---

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.overlayActive {
		return a.filterOverlay.View()
	}

	var warnings, errors int
	if a.store != nil {
		warnings, errors = a.store.Warnings, a.store.Errors
	}
	header := RenderHeader(a.path, warnings, errors, a.width)

	logW, ctxW, paneH := a.paneSizes()
	logBox := ui.StylePaneFocused.Width(logW - 2).Height(paneH - 2).Render(a.logPane.View())
	ctxBox := ui.StylePane.Width(ctxW - 2).Height(paneH - 2).Render(a.contextPane.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, logBox, ctxBox)

	bar := RenderStatusBar(a.logPane.StatusLine(), a.status, a.hints(), a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar)
}

func (a App) hints() string {
	if a.showHelp {
		return "enter:select  space:toggle  v:range  y:copy  c:category  f:filters  r:reload  g/G:top/bot  q:quit"
	}
	return "?:help  f:filters  q:quit"
}

// paneSizes splits the terminal between the log pane and the context pane,
// leaving rows for the header, the status bar, and the pane borders.
func (a App) paneSizes() (logW, ctxW, paneH int) {
	logW = a.width * 2 / 3
	ctxW = a.width - logW
	paneH = a.height - 2 // header + status bar
	if paneH < 3 {
		paneH = 3
	}
	return logW, ctxW, paneH
}

func (a *App) layout() {
	logW, ctxW, paneH := a.paneSizes()
	// Interior sizes exclude the rounded borders.
	a.logPane.SetSize(logW-2, paneH-2)
	a.contextPane.SetSize(ctxW-2, paneH-2)
	a.filterOverlay.SetSize(a.width, a.height)
}
