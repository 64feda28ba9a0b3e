package response

import (
	"encoding/json"
	"strings"

	"github.com/dkinzler/respkit/errors"
)

// ErrorEntry describes a single problem of an Error response.
type ErrorEntry struct {
	// application defined, e.g. higher values for more severe problems
	Severity uint16
	// e.g. the name of the input field the problem relates to
	RelatedTo string
	Message   string
	Err       error
}

// Returns a new ErrorEntry, if message is empty the message of err is used.
func NewErrorEntry(severity uint16, relatedTo string, message string, err error) ErrorEntry {
	if message == "" && err != nil {
		message = errors.Message(err)
	}
	return ErrorEntry{
		Severity:  severity,
		RelatedTo: relatedTo,
		Message:   message,
		Err:       err,
	}
}

func (e ErrorEntry) MarshalJSON() ([]byte, error) {
	type entry struct {
		Severity  uint16 `json:"severity,omitempty"`
		RelatedTo string `json:"relatedTo,omitempty"`
		Message   string `json:"message,omitempty"`
		Error     string `json:"error,omitempty"`
	}
	v := entry{
		Severity:  e.Severity,
		RelatedTo: e.RelatedTo,
		Message:   e.Message,
	}
	if e.Err != nil {
		v.Error = errors.Message(e.Err)
	}
	return json.Marshal(v)
}

// EntryBuilder creates an ErrorEntry step by step:
//
//	entry, err := NewEntryBuilder().WithError(err).WithSeverity(2).Build()
//
// The builder is a value, every With method returns a modified copy.
type EntryBuilder struct {
	severity  uint16
	relatedTo string
	message   string
	err       error
}

func NewEntryBuilder() EntryBuilder {
	return EntryBuilder{}
}

func (b EntryBuilder) WithSeverity(severity uint16) EntryBuilder {
	b.severity = severity
	return b
}

func (b EntryBuilder) WithRelatedTo(relatedTo string) EntryBuilder {
	b.relatedTo = relatedTo
	return b
}

func (b EntryBuilder) WithMessage(message string) EntryBuilder {
	b.message = message
	return b
}

func (b EntryBuilder) WithError(err error) EntryBuilder {
	b.err = err
	return b
}

// Build returns the ErrorEntry.
// If an error was attached, an empty RelatedTo defaults to the parameter name of an invalid argument error (see errors.ParamOf)
// and an empty message defaults to the message of the error.
// Returns an error with code InvalidArgument if the resulting message is blank.
func (b EntryBuilder) Build() (ErrorEntry, error) {
	relatedTo, message := b.relatedTo, b.message
	if b.err != nil {
		if relatedTo == "" {
			relatedTo, _ = errors.ParamOf(b.err)
		}
		if message == "" {
			message = errors.Message(b.err)
		}
	}
	if strings.TrimSpace(message) == "" {
		return ErrorEntry{}, errors.New(nil, "EntryBuilder", errors.InvalidArgument).
			WithParam("message").
			WithInternalMessage("entry needs a message or an error")
	}
	return ErrorEntry{
		Severity:  b.severity,
		RelatedTo: relatedTo,
		Message:   message,
		Err:       b.err,
	}, nil
}

// MarshalJSON encodes the message and the error entries of the response.
func (r Error) MarshalJSON() ([]byte, error) {
	entries := r.Errors()
	if entries == nil {
		entries = []ErrorEntry{}
	}
	return json.Marshal(struct {
		Message string       `json:"message"`
		Errors  []ErrorEntry `json:"errors"`
	}{
		Message: r.message,
		Errors:  entries,
	})
}
