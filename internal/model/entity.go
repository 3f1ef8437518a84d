package model

// EntityType identifies which collection a record belongs to
type EntityType string

const (
	TypeTime     EntityType = "time"
	TypeReceipt  EntityType = "receipt"
	TypeInvoice  EntityType = "invoice"
	TypeJobSite  EntityType = "jobsite"
	TypePersonal EntityType = "personal"
)

// Entity is satisfied by every record kind in the store
type Entity interface {
	Kind() EntityType
	EventDate() string
}

// CalendarEvent is the transient projection of any entity onto the calendar.
// Date is carried verbatim from the record (YYYY-MM-DD); it is never parsed
// here. Lifetime is one render pass.
type CalendarEvent struct {
	Date   string
	Type   EntityType
	Entity Entity
}
