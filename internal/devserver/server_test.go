package devserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/submit"
)

var testCreds = Credentials{Username: "johndoe", Password: "secret"}

func testAPI(t *testing.T) (*Server, *api.Client) {
	t.Helper()
	srv := NewServer(NewStore(), testCreds, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	client := api.NewClient(ts.URL, "")
	token, err := client.Login(testCreds.Username, testCreds.Password)
	require.NoError(t, err)
	client.SetAPIKey(token.AccessToken)
	return srv, client
}

func TestServerIndex(t *testing.T) {
	_, client := testAPI(t)
	msg, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "hello world", msg)
}

func TestServerLoginRejectsWrongPassword(t *testing.T) {
	srv := NewServer(nil, testCreds, nil)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	_, err := api.NewClient(ts.URL, "").Login("johndoe", "nope")
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestServerRequiresBearer(t *testing.T) {
	srv := NewServer(nil, testCreds, nil)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	_, err := api.NewClient(ts.URL, "forged").ListClassrooms(0, 0)
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestServerClassroomLifecycle(t *testing.T) {
	_, client := testAPI(t)

	items, err := client.ListClassrooms(0, 0)
	require.NoError(t, err)
	assert.Empty(t, items)

	created, err := client.CreateClassroom(api.ClassroomCreate{
		Name:      "CS3560 Spring 2022-2023",
		BeginDate: "2023-01-01",
		EndDate:   "2023-05-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.GithubClassroomLink)

	got, err := client.GetClassroom(created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	link := "https://classroom.github.com/classrooms/1"
	updated, err := client.UpdateClassroom(created.ID, api.ClassroomUpdate{GithubClassroomLink: &link})
	require.NoError(t, err)
	assert.Equal(t, link, updated.Link())
	assert.Equal(t, created.Name, updated.Name)

	require.NoError(t, client.DeleteClassroom(created.ID))
	_, err = client.GetClassroom(created.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestServerUpdateValidationShape(t *testing.T) {
	srv, client := testAPI(t)
	c, err := srv.Store().Create(api.ClassroomCreate{Name: "CS101", BeginDate: "2024-01-01", EndDate: "2024-05-01"})
	require.NoError(t, err)

	empty := ""
	early := "2023-01-01"
	_, err = client.UpdateClassroom(c.ID, api.ClassroomUpdate{Name: &empty, EndDate: &early})
	require.Error(t, err)
	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"name":     "required",
		"end_date": "end date must not be before begin date",
	}, verr.Fields)
}

func TestServerDrivesSubmitChannel(t *testing.T) {
	srv, client := testAPI(t)
	c, err := srv.Store().Create(api.ClassroomCreate{Name: "CS101", BeginDate: "2024-01-01", EndDate: "2024-05-01"})
	require.NoError(t, err)

	slot := submit.NewSlot()
	ch := submit.NewChannel(submit.NewClassroomHandler(client, c.ID), slot, nil)

	bad := url.Values{}
	bad.Set(submit.FieldName, "")
	r, seq, err := ch.Submit(bad, submit.Options{Method: submit.MethodPatch})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	msg, ok := r.FieldError(submit.FieldName)
	assert.True(t, ok)
	assert.Equal(t, "required", msg)

	good := url.Values{}
	good.Set(submit.FieldName, "CS101 Fall")
	good.Set(submit.FieldLink, "https://classroom.github.com/classrooms/7")
	r, seq, err = ch.Submit(good, submit.Options{Method: submit.MethodPatch})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)
	assert.True(t, r.OK())

	stored, err := srv.Store().Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "CS101 Fall", stored.Name)
	assert.Equal(t, "2024-01-01", stored.BeginDate)

	r, _, err = ch.Submit(nil, submit.Options{Method: submit.MethodDelete})
	require.NoError(t, err)
	assert.True(t, r.OK())

	r, seq, err = ch.Submit(nil, submit.Options{Method: submit.MethodDelete})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), seq)
	assert.False(t, r.OK())
	_, ok = r.FieldError("detail")
	assert.True(t, ok)
}

func TestServerBadPathID(t *testing.T) {
	srv := NewServer(nil, testCreds, nil)
	token := srv.IssueToken("johndoe")

	req := httptest.NewRequest(http.MethodGet, "/classrooms/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "classroom_id")
}

func TestServerUnknownRoute(t *testing.T) {
	srv := NewServer(nil, testCreds, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/students", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
