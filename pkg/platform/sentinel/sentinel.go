package sentinel

import "errors"

// Sentinel errors for store-level facts. Stores return these (optionally
// wrapped) and services translate them into domain errors:
//   - ErrNotFound: no record for the requested key
//   - ErrConflict: two records claim the same unique key while loading
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
