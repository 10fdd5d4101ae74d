package ui

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/config"
	"github.com/gravitrone/classdesk/internal/submit"
	"github.com/gravitrone/classdesk/internal/ui/components"
)

type screen int

const (
	screenList screen = iota
	screenPanel
)

var toastTTL = 2500 * time.Millisecond

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}

// submittedMsg reports a finished round trip through the submission channel.
type submittedMsg struct {
	id     int
	method submit.Method
	result submit.Result
	seq    uint64
	err    error
}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root model: the classroom list and the classroom panel.
type App struct {
	client *api.Client
	config *config.Config
	slot   *submit.Slot
	logger *slog.Logger

	screen      screen
	list        ClassroomsModel
	panel       ClassroomPanel
	panelID     int
	width       int
	height      int
	err         string
	toast       *appToast
	quitConfirm bool
}

// NewApp creates the root model. Results published into slot are expected
// back as ResultMsg; a nil slot gets a private one.
func NewApp(client *api.Client, cfg *config.Config, slot *submit.Slot, logger *slog.Logger) App {
	if slot == nil {
		slot = submit.NewSlot()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return App{
		client: client,
		config: cfg,
		slot:   slot,
		logger: logger,
		screen: screenList,
		list:   NewClassroomsModel(client),
	}
}

// Slot returns the mailbox the panel's submissions publish into.
func (a App) Slot() *submit.Slot {
	return a.slot
}

func (a App) Init() tea.Cmd {
	return a.list.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.width = msg.Width
		a.list.height = msg.Height
		a.panel.width = msg.Width
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		a.logger.Warn("ui error", "error", msg.err)
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case classroomsLoadedMsg:
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case classroomLoadedMsg:
		if msg.open {
			a.openPanel(msg.classroom)
			return a, nil
		}
		if a.screen == screenPanel && a.panelID == msg.classroom.ID {
			a.panel.SetClassroom(msg.classroom)
		}
		return a, nil

	case ResultMsg:
		if a.onPanel(msg.Result.EntityID) {
			a.panel, _ = a.panel.Update(msg)
		}
		return a, nil

	case submittedMsg:
		return a.handleSubmitted(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.screen == screenPanel {
		var cmd tea.Cmd
		a.panel, cmd = a.panel.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y"):
			return a, tea.Quit
		case isKey(msg, "n"), isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}
	if a.err != "" {
		a.err = ""
	}

	if isQuit(msg) {
		if a.hasUnsaved() {
			a.quitConfirm = true
			return a, nil
		}
		return a, tea.Quit
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenPanel:
		if a.panel.Mode() == ModeView && isBack(msg) {
			a.screen = screenList
			return a, nil
		}
		a.panel, cmd = a.panel.Update(msg)
	default:
		if isKey(msg, "q") {
			return a, tea.Quit
		}
		a.list, cmd = a.list.Update(msg)
	}
	return a, cmd
}

func (a *App) openPanel(c api.Classroom) {
	ch := submit.NewChannel(submit.NewClassroomHandler(a.client, c.ID), a.slot, a.logger)
	a.panel = NewClassroomPanel(c, channelSubmit(ch, c.ID), PanelOptionsFromConfig(a.config))
	_, seq, _ := a.slot.Latest()
	a.panel.SkipThrough(seq)
	a.panel.width = a.width
	a.panelID = c.ID
	a.screen = screenPanel
	a.logger.Debug("classroom opened", "classroom_id", c.ID)
}

// channelSubmit adapts a Channel to the panel's SubmitFunc.
func channelSubmit(ch *submit.Channel, id int) SubmitFunc {
	return func(payload url.Values, opts submit.Options) tea.Cmd {
		return func() tea.Msg {
			result, seq, err := ch.Submit(payload, opts)
			return submittedMsg{id: id, method: opts.Method, result: result, seq: seq, err: err}
		}
	}
}

func (a App) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.err = msg.err.Error()
		return a, nil
	}
	onPanel := a.onPanel(msg.id)
	if onPanel {
		a.panel, _ = a.panel.Update(ResultMsg{Result: msg.result, Seq: msg.seq})
	}

	switch {
	case msg.method == submit.MethodPatch && msg.result.OK():
		cmds := []tea.Cmd{a.setToast("success", "Classroom saved.")}
		if onPanel {
			cmds = append(cmds, loadClassroom(a.client, msg.id, false))
		}
		return a, tea.Batch(cmds...)
	case msg.method == submit.MethodDelete && msg.result.OK():
		if onPanel {
			a.screen = screenList
		}
		a.list.loading = true
		return a, tea.Batch(a.list.load(), a.setToast("success", "Classroom deleted."))
	case msg.method == submit.MethodDelete:
		detail, ok := msg.result.FieldError("detail")
		if !ok {
			detail = "Delete failed."
		}
		return a, a.setToast("error", detail)
	}
	return a, nil
}

// onPanel reports whether the panel for classroom id is on screen. Results
// for any other classroom are dropped.
func (a App) onPanel(id int) bool {
	return a.screen == screenPanel && a.panelID == id
}

func (a App) hasUnsaved() bool {
	return a.screen == screenPanel && a.panel.Dirty()
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{level: level, text: components.SanitizeOneLine(text)}
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- Rendering ---

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	var content string
	switch a.screen {
	case screenPanel:
		content = a.panel.View()
	default:
		content = a.list.View()
	}
	if a.quitConfirm {
		content = components.ConfirmDialog("Quit", "You have unsaved changes. Quit anyway?")
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{components.Hint("y", "Quit"), components.Hint("n", "Stay")}
	}
	switch {
	case a.screen == screenList:
		return []string{
			components.Hint("↑/↓", "Move"),
			components.Hint("enter", "Open"),
			components.Hint("r", "Reload"),
			components.Hint("q", "Quit"),
		}
	case a.panel.Mode() == ModeEdit:
		return []string{
			components.Hint("tab", "Next"),
			components.Hint("shift+tab", "Prev"),
			components.Hint("ctrl+s", "Save"),
			components.Hint("esc", "Cancel"),
		}
	default:
		return []string{
			components.Hint("e", "Edit"),
			components.Hint("d", "Delete"),
			components.Hint("esc", "Back"),
			components.Hint("ctrl+c", "Quit"),
		}
	}
}

func (a App) renderToast() string {
	switch a.toast.level {
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	case "success":
		return components.TitledBox("Success", a.toast.text, a.width)
	}
	return components.TitledBox("Info", a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}
	if widest == 0 || widest >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-widest)/2)
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
