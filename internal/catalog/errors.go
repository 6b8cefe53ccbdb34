package catalog

import "fmt"

// CatalogError reports a problem loading or querying the tile catalog.
// Grounded on pkg/blockmodel's wrapped fmt.Errorf pattern in the teacher
// repo, generalized to a typed error so callers can distinguish load-time
// failures (fatal, per spec §7) from lookup failures.
type CatalogError struct {
	Kind CatalogErrorKind
	Msg  string
}

type CatalogErrorKind int

const (
	// Malformed indicates the manifest JSON failed to parse: unknown
	// keys, missing fields, or inconsistent sheet dimensions.
	Malformed CatalogErrorKind = iota
	// AmbiguousOrMissing indicates a lookup by id matched zero or more
	// than one tile.
	AmbiguousOrMissing
)

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog: %s", e.Msg)
}

func malformed(format string, args ...any) error {
	return &CatalogError{Kind: Malformed, Msg: fmt.Sprintf(format, args...)}
}

func ambiguousOrMissing(format string, args ...any) error {
	return &CatalogError{Kind: AmbiguousOrMissing, Msg: fmt.Sprintf(format, args...)}
}

// AnimationError reports an ambiguous or missing animation lookup.
type AnimationError struct {
	Msg string
}

func (e *AnimationError) Error() string {
	return fmt.Sprintf("animation: %s", e.Msg)
}
