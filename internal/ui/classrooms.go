package ui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/ui/components"
)

const classroomPageSize = 12

// --- Messages ---

type classroomsLoadedMsg struct {
	items []api.Classroom
}

// classroomLoadedMsg carries a fetched classroom. open asks the app to show
// it in a panel; otherwise it refreshes the panel already showing it.
type classroomLoadedMsg struct {
	classroom api.Classroom
	open      bool
}

// ClassroomsModel lists classrooms and opens the selected one.
type ClassroomsModel struct {
	client  *api.Client
	items   []api.Classroom
	list    *components.List
	loading bool
	width   int
	height  int
}

// NewClassroomsModel creates the list screen.
func NewClassroomsModel(client *api.Client) ClassroomsModel {
	return ClassroomsModel{
		client:  client,
		list:    components.NewList(classroomPageSize),
		loading: true,
	}
}

func (m ClassroomsModel) Init() tea.Cmd {
	return m.load()
}

func (m ClassroomsModel) load() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.ListClassrooms(0, 0)
		if err != nil {
			return errMsg{fmt.Errorf("list classrooms: %w", err)}
		}
		return classroomsLoadedMsg{items: items}
	}
}

func loadClassroom(client *api.Client, id int, open bool) tea.Cmd {
	return func() tea.Msg {
		c, err := client.GetClassroom(id)
		if err != nil {
			return errMsg{fmt.Errorf("load classroom %d: %w", id, err)}
		}
		return classroomLoadedMsg{classroom: *c, open: open}
	}
}

// Selected returns the classroom under the cursor.
func (m ClassroomsModel) Selected() (api.Classroom, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.items) {
		return api.Classroom{}, false
	}
	return m.items[idx], true
}

func (m ClassroomsModel) Update(msg tea.Msg) (ClassroomsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case classroomsLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.list.SetLen(len(msg.items))
		return m, nil
	case errMsg:
		m.loading = false
		return m, nil
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case isDown(msg):
			m.list.Down()
		case isUp(msg):
			m.list.Up()
		case isKey(msg, "r"):
			m.loading = true
			m.list.Reset()
			return m, m.load()
		case isEnter(msg):
			if c, ok := m.Selected(); ok {
				return m, loadClassroom(m.client, c.ID, true)
			}
		}
	}
	return m, nil
}

func (m ClassroomsModel) View() string {
	if m.loading {
		return components.TitledBox("Classrooms", MutedStyle.Render("Loading classrooms..."), m.width)
	}
	if len(m.items) == 0 {
		return components.TitledBox("Classrooms", MutedStyle.Render("No classrooms yet."), m.width)
	}

	width := components.BoxContentWidth(m.width)
	if width <= 0 {
		width = 64
	}
	cols := []components.TableColumn{
		{Header: "ID", Width: 4, Align: lipgloss.Right},
		{Header: "Name", Width: 28},
		{Header: "Begin", Width: 10},
		{Header: "End", Width: 10},
	}
	start, end := m.list.Window()
	rows := make([][]string, 0, end-start)
	for _, c := range m.items[start:end] {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, c.BeginDate, c.EndDate})
	}
	table := components.TableGrid(cols, rows, width, m.list.Selected()-start)

	footer := MutedStyle.Render(fmt.Sprintf("%d of %d", m.list.Selected()+1, len(m.items)))
	return components.TitledBox("Classrooms", table+"\n\n"+footer, m.width)
}
