package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is a non-validation HTTP failure returned by the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Message
}

// ValidationError is an HTTP 422 response, keyed by wire field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newResponseError(status int, body []byte) error {
	if status == http.StatusUnprocessableEntity {
		if fields, ok := extractFieldErrors(body); ok {
			return &ValidationError{Fields: fields}
		}
	}
	if msg, ok := extractAPIErrorBody(body); ok {
		return &Error{StatusCode: status, Message: msg}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return &Error{StatusCode: status}
	}
	return &Error{StatusCode: status, Message: fmt.Sprintf("HTTP %d: %s", status, msg)}
}

// extractFieldErrors understands FastAPI's detail list and a flat field map.
func extractFieldErrors(body []byte) (map[string]string, bool) {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return nil, false
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		fields := make(map[string]string, len(items))
		for _, item := range items {
			name := fieldFromLoc(item.Loc)
			if name == "" {
				continue
			}
			if _, seen := fields[name]; !seen {
				fields[name] = strings.TrimSpace(item.Msg)
			}
		}
		return fields, len(fields) > 0
	}

	var flat map[string]string
	if err := json.Unmarshal(envelope.Detail, &flat); err == nil && len(flat) > 0 {
		return flat, true
	}
	return nil, false
}

// fieldFromLoc picks the last string segment of a loc path like ["body","name"].
func fieldFromLoc(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" && s != "query" && s != "path" {
			return s
		}
	}
	return ""
}

func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	for _, key := range []string{"detail", "error", "message"} {
		if msg, ok := parseErrorValue(payload[key]); ok {
			return msg, true
		}
	}
	return "", false
}

func parseErrorValue(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		if msg == "" {
			return "", false
		}
		return msg, true
	case map[string]any:
		if nested, ok := parseErrorValue(value["error"]); ok {
			return nested, true
		}
		code, _ := value["code"].(string)
		message, _ := value["message"].(string)
		return formatAPIError(code, message)
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if msg, ok := entry["msg"].(string); ok && strings.TrimSpace(msg) != "" {
				parts = append(parts, strings.TrimSpace(msg))
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, "; "), true
	}
	return "", false
}

func formatAPIError(code, message string) (string, bool) {
	code = strings.TrimSpace(code)
	message = strings.TrimSpace(message)
	switch {
	case code != "" && message != "":
		return fmt.Sprintf("%s: %s", code, message), true
	case code != "":
		return code, true
	case message != "":
		return message, true
	default:
		return "", false
	}
}
