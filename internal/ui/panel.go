package ui

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/config"
	"github.com/gravitrone/classdesk/internal/submit"
	"github.com/gravitrone/classdesk/internal/ui/components"
)

// --- Panel Mode ---

// PanelMode selects which of the two panel views is rendered.
type PanelMode int

const (
	ModeView PanelMode = iota
	ModeEdit
)

func (m PanelMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// --- Draft ---

// Draft is the panel's uncommitted copy of a classroom's editable fields.
type Draft struct {
	Name         string
	BeginDate    string
	EndDate      string
	ExternalLink string
}

// DraftFrom copies the editable fields of c. A missing link becomes "".
func DraftFrom(c api.Classroom) Draft {
	return Draft{
		Name:         c.Name,
		BeginDate:    c.BeginDate,
		EndDate:      c.EndDate,
		ExternalLink: c.Link(),
	}
}

// Get returns the value stored under a wire field name.
func (d Draft) Get(field string) string {
	switch field {
	case submit.FieldName:
		return d.Name
	case submit.FieldBeginDate:
		return d.BeginDate
	case submit.FieldEndDate:
		return d.EndDate
	case submit.FieldLink:
		return d.ExternalLink
	}
	return ""
}

// Set stores value under a wire field name. Unknown names are ignored.
func (d *Draft) Set(field, value string) bool {
	switch field {
	case submit.FieldName:
		d.Name = value
	case submit.FieldBeginDate:
		d.BeginDate = value
	case submit.FieldEndDate:
		d.EndDate = value
	case submit.FieldLink:
		d.ExternalLink = value
	default:
		return false
	}
	return true
}

// Values encodes every field as form data.
func (d Draft) Values() url.Values {
	v := url.Values{}
	for _, field := range submit.FormFields {
		v.Set(field, d.Get(field))
	}
	return v
}

// --- Panel ---

// SubmitFunc hands an intent to the submission channel. The returned
// command performs the round trip.
type SubmitFunc func(payload url.Values, opts submit.Options) tea.Cmd

// ResultMsg delivers a published submission result to the panel. The app
// forwards it only to the panel showing Result.EntityID.
type ResultMsg struct {
	Result submit.Result
	Seq    uint64
}

// PanelOptions controls how the draft follows the confirmed classroom.
type PanelOptions struct {
	ResetOnCancel  bool
	ResyncOnUpdate bool
	DateLayout     string
}

// PanelOptionsFromConfig reads the panel settings out of cfg.
func PanelOptionsFromConfig(cfg *config.Config) PanelOptions {
	if cfg == nil {
		return PanelOptions{DateLayout: config.DefaultDateLayout}
	}
	return PanelOptions{
		ResetOnCancel:  cfg.ResetOnCancel,
		ResyncOnUpdate: cfg.ResyncOnUpdate,
		DateLayout:     cfg.DisplayDateLayout(),
	}
}

var fieldLabels = map[string]string{
	submit.FieldName:      "Name",
	submit.FieldBeginDate: "Begin Date",
	submit.FieldEndDate:   "End Date",
	submit.FieldLink:      "GitHub Classroom",
}

const (
	linkText   = "GitHub Classroom"
	fieldCount = 4
)

// ClassroomPanel shows one classroom and edits its basic info.
type ClassroomPanel struct {
	classroom api.Classroom
	draft     Draft
	mode      PanelMode
	inputs    [fieldCount]textinput.Model
	focus     int

	result    submit.Result
	hasResult bool
	lastSeq   uint64

	submit SubmitFunc
	opts   PanelOptions
	width  int
}

// NewClassroomPanel seeds the draft from c. submitFn may be nil, in which
// case Save and Delete do nothing.
func NewClassroomPanel(c api.Classroom, submitFn SubmitFunc, opts PanelOptions) ClassroomPanel {
	if opts.DateLayout == "" {
		opts.DateLayout = config.DefaultDateLayout
	}
	p := ClassroomPanel{
		classroom: c,
		draft:     DraftFrom(c),
		submit:    submitFn,
		opts:      opts,
	}
	for i, field := range submit.FormFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = fieldLabels[field]
		if field == submit.FieldBeginDate || field == submit.FieldEndDate {
			in.Placeholder = "YYYY-MM-DD"
		}
		p.inputs[i] = in
	}
	p.syncControls()
	return p
}

func (p ClassroomPanel) Init() tea.Cmd {
	return nil
}

// Mode returns the current render variant.
func (p ClassroomPanel) Mode() PanelMode { return p.mode }

// Classroom returns the confirmed classroom.
func (p ClassroomPanel) Classroom() api.Classroom { return p.classroom }

// Draft returns a copy of the draft.
func (p ClassroomPanel) Draft() Draft { return p.draft }

// Dirty reports whether the draft differs from the confirmed classroom.
func (p ClassroomPanel) Dirty() bool {
	return p.draft != DraftFrom(p.classroom)
}

// LastSeq is the sequence number of the last consumed result.
func (p ClassroomPanel) LastSeq() uint64 { return p.lastSeq }

// SkipThrough marks every result up to seq as already consumed.
func (p *ClassroomPanel) SkipThrough(seq uint64) {
	if seq > p.lastSeq {
		p.lastSeq = seq
	}
}

// ControlValue returns what the edit control for field currently holds.
func (p ClassroomPanel) ControlValue(field string) string {
	for i, f := range submit.FormFields {
		if f == field {
			return p.inputs[i].Value()
		}
	}
	return ""
}

// FieldError returns the message of the current error result for field.
func (p ClassroomPanel) FieldError(field string) (string, bool) {
	if !p.hasResult {
		return "", false
	}
	return p.result.FieldError(field)
}

// SetField writes one draft field and its control, leaving the others alone.
func (p *ClassroomPanel) SetField(field, value string) {
	if !p.draft.Set(field, value) {
		return
	}
	for i, f := range submit.FormFields {
		if f == field && p.inputs[i].Value() != value {
			p.inputs[i].SetValue(value)
		}
	}
}

// SetClassroom replaces the confirmed classroom. The draft follows only
// when ResyncOnUpdate is set.
func (p *ClassroomPanel) SetClassroom(c api.Classroom) {
	p.classroom = c
	if p.opts.ResyncOnUpdate {
		p.draft = DraftFrom(c)
		p.syncControls()
	}
}

func (p *ClassroomPanel) syncControls() {
	for i, field := range submit.FormFields {
		p.inputs[i].SetValue(p.draft.Get(field))
	}
}

func (p ClassroomPanel) Update(msg tea.Msg) (ClassroomPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil
	case ResultMsg:
		return p.consume(msg), nil
	case tea.KeyMsg:
		if p.mode == ModeEdit {
			return p.handleEditKeys(msg)
		}
		return p.handleViewKeys(msg)
	}
	if p.mode == ModeEdit {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p ClassroomPanel) consume(msg ResultMsg) ClassroomPanel {
	if msg.Seq <= p.lastSeq {
		return p
	}
	p.lastSeq = msg.Seq
	p.result = msg.Result
	p.hasResult = true
	if msg.Result.OK() {
		p.leaveEdit()
	}
	return p
}

func (p ClassroomPanel) handleViewKeys(msg tea.KeyMsg) (ClassroomPanel, tea.Cmd) {
	switch {
	case isKey(msg, "e"):
		p.mode = ModeEdit
		p.focus = 0
		cmd := p.inputs[p.focus].Focus()
		return p, cmd
	case isKey(msg, "d"):
		return p, p.send(nil, submit.MethodDelete)
	}
	return p, nil
}

func (p ClassroomPanel) handleEditKeys(msg tea.KeyMsg) (ClassroomPanel, tea.Cmd) {
	switch {
	case isBack(msg):
		p.leaveEdit()
		if p.opts.ResetOnCancel {
			p.draft = DraftFrom(p.classroom)
			p.syncControls()
		}
		return p, nil
	case isSave(msg):
		return p, p.send(p.draft.Values(), submit.MethodPatch)
	case isNextField(msg):
		cmd := p.moveFocus(1)
		return p, cmd
	case isPrevField(msg):
		cmd := p.moveFocus(-1)
		return p, cmd
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	p.draft.Set(submit.FormFields[p.focus], p.inputs[p.focus].Value())
	return p, cmd
}

func (p *ClassroomPanel) moveFocus(delta int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + delta + fieldCount) % fieldCount
	return p.inputs[p.focus].Focus()
}

func (p *ClassroomPanel) leaveEdit() {
	p.mode = ModeView
	p.inputs[p.focus].Blur()
}

func (p ClassroomPanel) send(payload url.Values, method submit.Method) tea.Cmd {
	if p.submit == nil {
		return nil
	}
	return p.submit(payload, submit.Options{Method: method})
}

// --- Rendering ---

func (p ClassroomPanel) View() string {
	switch p.mode {
	case ModeEdit:
		return p.renderEdit()
	default:
		return p.renderView()
	}
}

func (p ClassroomPanel) renderView() string {
	c := p.classroom
	var b strings.Builder
	b.WriteString(TitleStyle.Render(components.SanitizeOneLine(c.Name)))
	b.WriteString("\n\n")
	b.WriteString(components.InfoRow("Begin", p.formatDate(c.BeginDate)))
	b.WriteString("  ")
	b.WriteString(components.InfoRow("End", p.formatDate(c.EndDate)))
	if link := strings.TrimSpace(c.Link()); link != "" {
		b.WriteString("\n\n")
		b.WriteString(termenv.Hyperlink(components.SanitizeOneLine(link), LinkStyle.Render(linkText)))
	}
	return components.TitledBox("Classroom", b.String(), p.width)
}

func (p ClassroomPanel) renderEdit() string {
	var b strings.Builder
	for i, field := range submit.FormFields {
		if i > 0 {
			b.WriteString("\n\n")
		}
		problem, _ := p.FieldError(field)
		b.WriteString(components.FormField(fieldLabels[field], p.inputs[i].View(), i == p.focus, problem))
	}
	if extra := p.otherErrors(); extra != "" {
		b.WriteString("\n\n")
		b.WriteString(ErrorStyle.Render(extra))
	}
	return components.FocusBox("Edit Classroom", b.String(), p.width)
}

// otherErrors collects error entries that do not belong to a form field.
func (p ClassroomPanel) otherErrors() string {
	if !p.hasResult || p.result.OK() {
		return ""
	}
	var keys []string
	for k := range p.result.Data {
		if _, ok := fieldLabels[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = components.SanitizeOneLine(p.result.Data[k])
	}
	return strings.Join(lines, "\n")
}

func (p ClassroomPanel) formatDate(value string) string {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return value
	}
	return t.Format(p.opts.DateLayout)
}
