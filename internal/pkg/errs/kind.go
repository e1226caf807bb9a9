package errs

import "errors"

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	case KindInternal:
		return "internal"
	}
	return "internal"
}

// KindOf walks the error chain, including joined errors, and returns the
// first matching kind. Persistence wins over everything else.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrStateConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrVersionIsInvalid):
		return KindValidation
	}
	return KindInternal
}
