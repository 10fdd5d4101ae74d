package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/ui/components"
)

func testClassroomsClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, "test-key")
}

func manyClassrooms(n int) []api.Classroom {
	out := make([]api.Classroom, n)
	for i := range out {
		out[i] = api.Classroom{
			ID:        i + 1,
			Name:      fmt.Sprintf("Section %02d", i+1),
			BeginDate: "2024-01-01",
			EndDate:   "2024-05-01",
		}
	}
	return out
}

func loadedList(items []api.Classroom) ClassroomsModel {
	m := NewClassroomsModel(nil)
	m, _ = m.Update(classroomsLoadedMsg{items: items})
	return m
}

func TestClassroomsLoadCallsList(t *testing.T) {
	var path string
	client := testClassroomsClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(manyClassrooms(2))
	})
	m := NewClassroomsModel(client)
	msg := m.Init()()

	loaded, ok := msg.(classroomsLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.items, 2)
	assert.Equal(t, "/classrooms/", path)
}

func TestClassroomsLoadErrorBecomesErrMsg(t *testing.T) {
	client := testClassroomsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	msg := NewClassroomsModel(client).Init()()

	e, ok := msg.(errMsg)
	require.True(t, ok)
	assert.Contains(t, e.err.Error(), "Not authenticated")
}

func TestClassroomsViewStates(t *testing.T) {
	loading := components.SanitizeText(NewClassroomsModel(nil).View())
	assert.Contains(t, loading, "Loading classrooms")

	empty := components.SanitizeText(loadedList(nil).View())
	assert.Contains(t, empty, "No classrooms yet.")

	full := components.SanitizeText(loadedList(manyClassrooms(3)).View())
	assert.Contains(t, full, "Section 01")
	assert.Contains(t, full, "Section 03")
	assert.Contains(t, full, "1 of 3")
}

func TestClassroomsNavigationAndPaging(t *testing.T) {
	m := loadedList(manyClassrooms(classroomPageSize + 3))
	for range classroomPageSize + 1 {
		m, _ = m.Update(keyType(tea.KeyDown))
	}
	c, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, classroomPageSize+2, c.ID)

	out := components.SanitizeText(m.View())
	assert.NotContains(t, out, "Section 01")
	assert.Contains(t, out, fmt.Sprintf("Section %02d", classroomPageSize+2))

	m, _ = m.Update(runeKey('k'))
	c, _ = m.Selected()
	assert.Equal(t, classroomPageSize+1, c.ID)
}

func TestClassroomsEnterLoadsSelected(t *testing.T) {
	client := testClassroomsClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/classrooms/2" {
			json.NewEncoder(w).Encode(manyClassrooms(2)[1])
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	m := NewClassroomsModel(client)
	m, _ = m.Update(classroomsLoadedMsg{items: manyClassrooms(2)})
	m, _ = m.Update(keyType(tea.KeyDown))

	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.NotNil(t, cmd)
	loaded, ok := cmd().(classroomLoadedMsg)
	require.True(t, ok)
	assert.True(t, loaded.open)
	assert.Equal(t, 2, loaded.classroom.ID)
}

func TestClassroomsEnterOnEmptyListDoesNothing(t *testing.T) {
	m := loadedList(nil)
	_, cmd := m.Update(keyType(tea.KeyEnter))
	assert.Nil(t, cmd)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestClassroomsKeysIgnoredWhileLoading(t *testing.T) {
	m := NewClassroomsModel(nil)
	_, cmd := m.Update(runeKey('r'))
	assert.Nil(t, cmd)
}

func TestClassroomsReloadReturnsToTop(t *testing.T) {
	m := loadedList(manyClassrooms(classroomPageSize + 3))
	for range classroomPageSize + 1 {
		m, _ = m.Update(keyType(tea.KeyDown))
	}
	require.NotZero(t, m.list.Offset)

	m, cmd := m.Update(runeKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, 0, m.list.Cursor)
	assert.Equal(t, 0, m.list.Offset)
}
