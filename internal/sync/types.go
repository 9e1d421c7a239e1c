package sync

import "fmt"

// Sources of foreign records
const (
	SourceInventory    = "app1"
	SourceAppointments = "hospital"
)

// Mirror tables, used as record count keys
const (
	TableLists = "lists"
	TableItems = "items"
	TableCitas = "citas"
)

// ErrorKind classifies a synchronization failure
type ErrorKind string

const (
	// KindForeignRead means the foreign system could not be read; nothing was written
	KindForeignRead ErrorKind = "foreign-read"
	// KindWrite means a local write failed; earlier upserts of the call may remain
	KindWrite ErrorKind = "write"
)

// Error is a structured synchronization failure
type Error struct {
	Err     error
	Message string
	Kind    ErrorKind
	Source  string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func foreignReadError(source string, err error) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf("failed to read %s: %v", source, err),
		Kind:    KindForeignRead,
		Source:  source,
	}
}

func writeError(source string, err error) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf("failed to write %s mirror: %v", source, err),
		Kind:    KindWrite,
		Source:  source,
	}
}

// InventoryResult counts the inventory records read by a sync call
type InventoryResult struct {
	Lists int `json:"lists"`
	Items int `json:"items"`
}

// AppointmentsResult counts the citas read by a sync call
type AppointmentsResult struct {
	Appointments int `json:"citas"`
}
