package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/submit"
	"github.com/gravitrone/classdesk/internal/ui/components"
)

func TestPanelViewShowsNameAndLocaleDates(t *testing.T) {
	c := api.Classroom{ID: 1, Name: "CS3560 Spring 2022-2023", BeginDate: "2023-01-01", EndDate: "2023-05-05"}
	out := components.SanitizeText(NewClassroomPanel(c, nil, PanelOptions{}).View())

	assert.Contains(t, out, "CS3560 Spring 2022-2023")
	assert.Contains(t, out, "Begin: Sun Jan 01 2023")
	assert.Contains(t, out, "End: Fri May 05 2023")
}

func TestPanelViewShowsLinkOnlyWhenPresent(t *testing.T) {
	link := "https://classroom.github.com/classrooms/42"
	empty := ""
	cases := []struct {
		name string
		link *string
		want bool
	}{
		{name: "nil", link: nil, want: false},
		{name: "empty", link: &empty, want: false},
		{name: "set", link: &link, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cs101()
			c.GithubClassroomLink = tc.link
			out := NewClassroomPanel(c, nil, PanelOptions{}).View()

			assert.Equal(t, tc.want, strings.Contains(out, "GitHub Classroom"))
			assert.Equal(t, tc.want, strings.Contains(out, "\x1b]8;;"+link))
		})
	}
}

func TestPanelViewShowsConfirmedClassroomNotDraft(t *testing.T) {
	p := enterEdit(t, NewClassroomPanel(cs101(), nil, PanelOptions{}))
	p = typeText(p, " draft")
	p, _ = p.Update(keyType(tea.KeyEsc))

	out := components.SanitizeText(p.View())
	assert.Contains(t, out, "CS101")
	assert.NotContains(t, out, "CS101 draft")
}

func TestPanelViewFallsBackToRawDates(t *testing.T) {
	c := cs101()
	c.BeginDate = "next monday"
	out := components.SanitizeText(NewClassroomPanel(c, nil, PanelOptions{}).View())
	assert.Contains(t, out, "Begin: next monday")
}

func TestPanelViewHonoursDateLayout(t *testing.T) {
	out := components.SanitizeText(NewClassroomPanel(cs101(), nil, PanelOptions{DateLayout: "02/01/2006"}).View())
	assert.Contains(t, out, "Begin: 01/01/2024")
	assert.Contains(t, out, "End: 01/05/2024")
}

func TestPanelEditRendersFieldsInOrder(t *testing.T) {
	p := enterEdit(t, NewClassroomPanel(cs101(), nil, PanelOptions{}))
	out := components.SanitizeText(p.View())

	name := strings.Index(out, "Name:")
	begin := strings.Index(out, "Begin Date:")
	end := strings.Index(out, "End Date:")
	link := strings.Index(out, "GitHub Classroom:")
	assert.True(t, name >= 0 && name < begin && begin < end && end < link, out)
	assert.Contains(t, out, "> Name:")
	assert.Contains(t, out, "Edit Classroom")
	assert.NotContains(t, out, "(invalid)")
}

func TestPanelEditRendersFieldErrors(t *testing.T) {
	p := enterEdit(t, NewClassroomPanel(cs101(), nil, PanelOptions{}))
	p, _ = p.Update(ResultMsg{Result: submit.Failure(map[string]string{
		"name":   "required",
		"detail": "Classroom not found",
	}), Seq: 1})
	out := components.SanitizeText(p.View())

	assert.Equal(t, 1, strings.Count(out, "(invalid)"))
	assert.Contains(t, out, "required")
	assert.Contains(t, out, "Classroom not found")
}

func TestPanelOptionsFromConfig(t *testing.T) {
	opts := PanelOptionsFromConfig(nil)
	assert.Equal(t, "Mon Jan 02 2006", opts.DateLayout)
	assert.False(t, opts.ResetOnCancel)
}
