package osinfo

import (
	"errors"
	"fmt"
)

const (
	errorCodeMissingFact    = "OSINFO_MISSING_FACT"
	errorCodeUnparsableFact = "OSINFO_UNPARSABLE_FACT"
	errorCodeFactsInvalid   = "OSINFO_FACTS_INVALID"
	errorCodeCatalogInvalid = "OSINFO_CATALOG_INVALID"
	errorCodeCatalogTooNew  = "OSINFO_CATALOG_TOO_NEW"
)

var (
	// ErrMissingFacts indicates a required inspection fact could not be
	// obtained or parsed. This is the hard failure path, distinct from the
	// Unknown result: no identifier can be produced for the guest.
	ErrMissingFacts = errors.New("required inspection fact unavailable")
	// ErrFactsInvalid indicates a fact bundle failed parsing or validation.
	ErrFactsInvalid = errors.New("invalid fact bundle")
	// ErrCatalogInvalid indicates a rule catalog failed parsing or validation.
	ErrCatalogInvalid = errors.New("invalid OS catalog")
	// ErrCatalogTooNew indicates the catalog demands a newer application version.
	ErrCatalogTooNew = errors.New("catalog requires newer application")
)

type errorCoder interface {
	error
	Code() string
}

type withCodeError struct {
	error
	code string
}

func (e *withCodeError) Code() string {
	return e.code
}

func (e *withCodeError) Unwrap() error {
	return e.error
}

// WithErrorCode annotates err with an osinfo error code.
func WithErrorCode(err error, code string) error {
	if err == nil {
		return nil
	}
	return &withCodeError{error: err, code: code}
}

// MissingFactError reports which required fact was unavailable or unparsable.
type MissingFactError struct {
	Fact string
	Raw  string // set when the fact was present but could not be parsed
}

func (e *MissingFactError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("%s fact %q is not a non-negative integer", e.Fact, e.Raw)
	}
	return fmt.Sprintf("%s fact unavailable", e.Fact)
}

func (e *MissingFactError) Unwrap() error {
	return ErrMissingFacts
}

func newMissingFactError(fact string) error {
	return WithErrorCode(&MissingFactError{Fact: fact}, errorCodeMissingFact)
}

func newUnparsableFactError(fact, raw string) error {
	return WithErrorCode(&MissingFactError{Fact: fact, Raw: raw}, errorCodeUnparsableFact)
}

// ErrorCode resolves an error to its osinfo error code.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var coded errorCoder
	if errors.As(err, &coded) {
		if code := coded.Code(); code != "" {
			return code
		}
	}

	switch {
	case errors.Is(err, ErrMissingFacts):
		return errorCodeMissingFact
	case errors.Is(err, ErrFactsInvalid):
		return errorCodeFactsInvalid
	case errors.Is(err, ErrCatalogTooNew):
		return errorCodeCatalogTooNew
	case errors.Is(err, ErrCatalogInvalid):
		return errorCodeCatalogInvalid
	default:
		return ""
	}
}

// ExitCode maps osinfo errors to CLI exit codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, ErrFactsInvalid),
		errors.Is(err, ErrCatalogInvalid),
		errors.Is(err, ErrCatalogTooNew):
		return 2
	case errors.Is(err, ErrMissingFacts):
		return 7
	default:
		return 1
	}
}

// Suggestions provides CLI hints for osinfo errors.
func Suggestions(err error) []string {
	if err == nil {
		return nil
	}

	switch ErrorCode(err) {
	case errorCodeMissingFact, errorCodeUnparsableFact:
		return []string{
			"Re-run guest inspection to refresh the fact bundle",
			"Windows guests need product_name, product_variant and, for 10.0 clients, build_id",
		}
	case errorCodeFactsInvalid:
		return []string{
			"Fact bundles are YAML with type, distro, version fields; see osid resolve --help",
		}
	case errorCodeCatalogInvalid:
		return []string{
			"Validate the catalog first:    osid catalog check --file <path>",
		}
	case errorCodeCatalogTooNew:
		return []string{
			"Upgrade osid, or drop the catalog override to use the embedded tables",
		}
	default:
		return nil
	}
}
