package domain

import "errors"

// Domain errors.
var (
	ErrParse           = errors.New("malformed language document")
	ErrMissingSection  = errors.New("missing messages section")
	ErrMissingResource = errors.New("bundled language resource not found")
	ErrIO              = errors.New("language file i/o failed")
)

var codes = []struct {
	kind error
	code string
}{
	{ErrParse, "parse"},
	{ErrMissingSection, "missing_section"},
	{ErrMissingResource, "missing_resource"},
	{ErrIO, "io"},
}

// LoadError ties a failure kind to the operation and file it happened on.
type LoadError struct {
	Kind error
	Op   string
	Path string
	Err  error
}

// NewLoadError wraps err with kind. err may be nil or already wrap kind.
func NewLoadError(kind error, op, path string, err error) *LoadError {
	return &LoadError{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *LoadError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	switch {
	case e.Err == nil:
		msg += ": " + e.Kind.Error()
	case errors.Is(e.Err, e.Kind):
		msg += ": " + e.Err.Error()
	default:
		msg += ": " + e.Kind.Error() + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Code returns the stable code of the error kind carried by err, or "" when err
// is not a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return ""
}
