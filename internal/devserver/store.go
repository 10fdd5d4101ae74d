// Package devserver is an in-memory classroom API for local development and tests.
package devserver

import (
	"errors"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gravitrone/classdesk/internal/api"
)

// DateLayout is the wire format of begin_date and end_date.
const DateLayout = "2006-01-02"

// ErrNotFound is returned for unknown classroom ids.
var ErrNotFound = errors.New("classroom not found")

// FieldErrors maps wire field names to validation messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "validation failed"
}

// Store keeps classrooms in memory with sequential ids.
type Store struct {
	mu     sync.RWMutex
	items  map[int]api.Classroom
	nextID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: map[int]api.Classroom{}, nextID: 1}
}

// Create validates and stores a classroom.
func (s *Store) Create(input api.ClassroomCreate) (api.Classroom, error) {
	c := api.Classroom{
		Name:                input.Name,
		BeginDate:           input.BeginDate,
		EndDate:             input.EndDate,
		GithubClassroomLink: input.GithubClassroomLink,
	}
	if errs := validate(c); len(errs) > 0 {
		return api.Classroom{}, errs
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID
	s.nextID++
	s.items[c.ID] = c
	return c, nil
}

// List returns classrooms ordered by id.
func (s *Store) List(skip, limit int) []api.Classroom {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Classroom, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Get returns one classroom.
func (s *Store) Get(id int) (api.Classroom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	if !ok {
		return api.Classroom{}, ErrNotFound
	}
	return c, nil
}

// Update applies the non-nil fields of input, validating the merged record.
func (s *Store) Update(id int, input api.ClassroomUpdate) (api.Classroom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[id]
	if !ok {
		return api.Classroom{}, ErrNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.BeginDate != nil {
		c.BeginDate = *input.BeginDate
	}
	if input.EndDate != nil {
		c.EndDate = *input.EndDate
	}
	if input.GithubClassroomLink != nil {
		link := *input.GithubClassroomLink
		c.GithubClassroomLink = &link
	}
	if errs := validate(c); len(errs) > 0 {
		return api.Classroom{}, errs
	}
	s.items[id] = c
	return c, nil
}

// Delete removes a classroom.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func validate(c api.Classroom) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "required"
	}

	begin, beginErr := time.Parse(DateLayout, c.BeginDate)
	if beginErr != nil {
		errs["begin_date"] = "invalid date, expected YYYY-MM-DD"
	}
	end, endErr := time.Parse(DateLayout, c.EndDate)
	if endErr != nil {
		errs["end_date"] = "invalid date, expected YYYY-MM-DD"
	}
	if beginErr == nil && endErr == nil && end.Before(begin) {
		errs["end_date"] = "end date must not be before begin date"
	}

	if link := strings.TrimSpace(c.Link()); link != "" {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs["github_classroom_link"] = "must be an http(s) URL"
		}
	}
	return errs
}
