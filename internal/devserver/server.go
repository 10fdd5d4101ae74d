package devserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/logging"
)

// Credentials is the single account the dev server accepts.
type Credentials struct {
	Username string
	Password string
}

// Server serves the classroom API over a Store.
type Server struct {
	store  *Store
	creds  Credentials
	logger *slog.Logger

	mu     sync.RWMutex
	tokens map[string]string

	mux *http.ServeMux
}

// NewServer builds the HTTP handler.
func NewServer(store *Store, creds Credentials, logger *slog.Logger) *Server {
	if store == nil {
		store = NewStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:  store,
		creds:  creds,
		logger: logger,
		tokens: map[string]string{},
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /token", s.handleToken)
	s.mux.HandleFunc("GET /classrooms/{$}", s.authed(s.handleList))
	s.mux.HandleFunc("POST /classrooms/{$}", s.authed(s.handleCreate))
	s.mux.HandleFunc("GET /classrooms/{id}", s.authed(s.handleGet))
	s.mux.HandleFunc("PATCH /classrooms/{id}", s.authed(s.handleUpdate))
	s.mux.HandleFunc("DELETE /classrooms/{id}", s.authed(s.handleDelete))
	return s
}

// Store exposes the backing store, mainly for seeding.
func (s *Server) Store() *Store {
	return s.store
}

// IssueToken mints a bearer token without the password exchange.
func (s *Server) IssueToken(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()
	return token
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if id := r.Header.Get(api.RequestIDHeader); id != "" {
		r = r.WithContext(logging.AppendCtx(r.Context(), slog.String("request_id", id)))
	}
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.DebugContext(r.Context(), "request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start),
	)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"msg": "hello world"})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form")
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || username != s.creds.Username || password != s.creds.Password {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	writeJSON(w, http.StatusOK, api.Token{AccessToken: s.IssueToken(username), TokenType: "bearer"})
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if ok {
			s.mu.RLock()
			_, ok = s.tokens[strings.TrimSpace(token)]
			s.mu.RUnlock()
		}
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 100)
	writeJSON(w, http.StatusOK, s.store.List(skip, limit))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input api.ClassroomCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	c, err := s.store.Create(input)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := s.store.Get(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var input api.ClassroomUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	c, err := s.store.Update(id, input)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var fields FieldErrors
	switch {
	case errors.Is(err, ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Classroom not found")
	case errors.As(err, &fields):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": detailList(fields)})
	default:
		s.logger.ErrorContext(r.Context(), "store failure", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

type detailItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func detailList(fields FieldErrors) []detailItem {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]detailItem, 0, len(names))
	for _, name := range names {
		out = append(out, detailItem{Loc: []string{"body", name}, Msg: fields[name], Type: "value_error"})
	}
	return out
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []detailItem{{Loc: []string{"path", "classroom_id"}, Msg: "value is not a valid integer", Type: "type_error"}},
		})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
