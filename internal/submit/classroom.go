package submit

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gravitrone/classdesk/internal/api"
)

// Wire names of the classroom form fields.
const (
	FieldName      = "name"
	FieldBeginDate = "begin_date"
	FieldEndDate   = "end_date"
	FieldLink      = "github_classroom_link"
)

// FormFields lists the classroom form fields in display order.
var FormFields = []string{FieldName, FieldBeginDate, FieldEndDate, FieldLink}

// ClassroomStore is the slice of the API client a ClassroomHandler needs.
type ClassroomStore interface {
	UpdateClassroom(id int, input api.ClassroomUpdate) (*api.Classroom, error)
	DeleteClassroom(id int) error
}

// ClassroomHandler submits intents against one classroom.
type ClassroomHandler struct {
	store ClassroomStore
	id    int
}

// NewClassroomHandler binds a handler to a classroom id.
func NewClassroomHandler(store ClassroomStore, id int) *ClassroomHandler {
	return &ClassroomHandler{store: store, id: id}
}

func (h *ClassroomHandler) Handle(payload url.Values, opts Options) (Result, error) {
	var err error
	switch opts.Method {
	case MethodPatch:
		_, err = h.store.UpdateClassroom(h.id, UpdateFromForm(payload))
	case MethodDelete:
		err = h.store.DeleteClassroom(h.id)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
	if err == nil {
		return Success().For(h.id), nil
	}

	var verr *api.ValidationError
	if errors.As(err, &verr) {
		return Failure(verr.Fields).For(h.id), nil
	}
	var apiErr *api.Error
	if api.IsNotFound(err) && errors.As(err, &apiErr) {
		return Failure(map[string]string{"detail": apiErr.Error()}).For(h.id), nil
	}
	return Result{}, fmt.Errorf("%s classroom %d: %w", opts.Method, h.id, err)
}

// UpdateFromForm converts form values into a partial update. Fields absent
// from the form stay nil; present but empty fields are sent as "".
func UpdateFromForm(form url.Values) api.ClassroomUpdate {
	var input api.ClassroomUpdate
	pick := func(key string) *string {
		if _, ok := form[key]; !ok {
			return nil
		}
		v := form.Get(key)
		return &v
	}
	input.Name = pick(FieldName)
	input.BeginDate = pick(FieldBeginDate)
	input.EndDate = pick(FieldEndDate)
	input.GithubClassroomLink = pick(FieldLink)
	return input
}
