package localization

import "errors"

var (
	// ErrMissingCatalog reports an absent canonical catalog file. No mapping
	// can be produced without it, so construction fails.
	ErrMissingCatalog = errors.New("missing canonical strings.po catalog")

	// ErrUnknownString reports a lookup key that is not present in the
	// canonical catalog. This is a content defect in the caller, not a
	// translation gap, so it is surfaced instead of echoing the input back.
	ErrUnknownString = errors.New("string not found in canonical catalog")
)
