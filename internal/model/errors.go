package model

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidSlug   = errors.New("settingstab: slug must match ^[a-z0-9-_]+$")
	ErrMissingID     = errors.New("settingstab: field needs an id or title")
	ErrDuplicateID   = errors.New("settingstab: field id already exists")
	ErrFieldNotFound = errors.New("settingstab: field does not exist")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// ValidateSlug checks the tab slug format.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// ValidationError reports a malformed descriptor. It unwraps to one of the
// sentinel errors above.
type ValidationError struct {
	Index int
	Key   string
	ID    string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.ID != "":
		return fmt.Sprintf("%v: %q", e.Err, e.ID)
	case e.Key != "":
		return fmt.Sprintf("%v (field %d, key %q)", e.Err, e.Index, e.Key)
	default:
		return fmt.Sprintf("%v (field %d)", e.Err, e.Index)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
