package domain

import "fmt"

// UnknownCommandError is returned for a subcommand name outside Actions.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (expected one of activity, profile, list-repo, list-issues, markdown-mode)", e.Name)
}

// MissingOptionError reports a required option that was not supplied.
type MissingOptionError struct {
	Name string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option --%s", e.Name)
}

// InvalidOptionError reports an option whose value is out of range.
type InvalidOptionError struct {
	Name   string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option --%s: %s", e.Name, e.Reason)
}

// TransportError means no HTTP response was obtained at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is a response that arrived with a non-success status.
// Message is the "message" field of the JSON body, or empty.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d - %s", e.Status, e.Message)
}

// MalformedResponseError means a response decoded but lacked a field the projection needs.
// Index is the element position for list responses and -1 otherwise.
type MalformedResponseError struct {
	Resource string
	Field    string
	Index    int
	Err      error
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("malformed %s response: %v", e.Resource, e.Err)
	case e.Index >= 0:
		return fmt.Sprintf("malformed %s response: element %d is missing %q", e.Resource, e.Index, e.Field)
	default:
		return fmt.Sprintf("malformed %s response: missing %q", e.Resource, e.Field)
	}
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// InvalidTimestampError is returned by FormatDate for input it cannot parse.
type InvalidTimestampError struct {
	Value string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp %q", e.Value)
}
