// Package submit carries edit and delete intents from a UI panel to the API
// and reports the outcome through a single-slot result mailbox.
package submit

import "fmt"

// Method is the intent of a submission.
type Method string

const (
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m == MethodPatch || m == MethodDelete
}

// Options accompany a submission payload.
type Options struct {
	Method Method
}

// Status tags a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the outcome of a submission, as {"status":..., "data":...} on the wire.
// Data is nil on success and maps field names to messages on error.
// EntityID names the record the submission targeted; it stays off the wire.
type Result struct {
	Status   Status            `json:"status"`
	Data     map[string]string `json:"data"`
	EntityID int               `json:"-"`
}

// Success builds a success result.
func Success() Result {
	return Result{Status: StatusSuccess}
}

// Failure builds an error result from field messages.
func Failure(fields map[string]string) Result {
	data := make(map[string]string, len(fields))
	for k, v := range fields {
		data[k] = v
	}
	return Result{Status: StatusError, Data: data}
}

// For tags r with the id of the record it belongs to.
func (r Result) For(id int) Result {
	r.EntityID = id
	return r
}

// OK reports a success result.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// FieldError returns the message for a field on an error result.
func (r Result) FieldError(field string) (string, bool) {
	if r.Status != StatusError {
		return "", false
	}
	msg, ok := r.Data[field]
	return msg, ok
}

func (r Result) String() string {
	if r.Status == StatusError {
		return fmt.Sprintf("error(%d fields)", len(r.Data))
	}
	return string(r.Status)
}
