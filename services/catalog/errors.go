package catalog

import "fmt"

// CatalogError carries a machine-readable code alongside the message so
// handlers can map failures onto HTTP statuses.
type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidRoomID reports a malformed room identifier.
	ErrInvalidRoomID = &CatalogError{Code: "invalidId", Message: "invalid room id"}
	// ErrRoomNotFound reports that no room matched the given identifier.
	ErrRoomNotFound = &CatalogError{Code: "notFound", Message: "room not found"}
)
