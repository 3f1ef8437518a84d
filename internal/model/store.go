package model

// Store owns the five entity collections. Everything downstream holds
// read references only; there is no writer in this app, so no locking.
type Store struct {
	timeEntries []TimeEntry
	receipts    []Receipt
	invoices    []Invoice
	jobSites    []JobSite
	personal    []PersonalEvent
}

// NewStore wraps the given collections. The store takes ownership of
// the slices; callers must not mutate them afterwards.
func NewStore(entries []TimeEntry, receipts []Receipt, invoices []Invoice, sites []JobSite, personal []PersonalEvent) *Store {
	return &Store{
		timeEntries: entries,
		receipts:    receipts,
		invoices:    invoices,
		jobSites:    sites,
		personal:    personal,
	}
}

func (s *Store) TimeEntries() []TimeEntry { return s.timeEntries }

func (s *Store) Receipts() []Receipt { return s.receipts }

func (s *Store) Invoices() []Invoice { return s.invoices }

func (s *Store) JobSites() []JobSite { return s.jobSites }

func (s *Store) Personal() []PersonalEvent { return s.personal }

// Events projects the four dated collections into the unified stream.
func (s *Store) Events() []CalendarEvent {
	return Project(s.timeEntries, s.receipts, s.invoices, s.personal)
}
