package model

// Project merges the four dated collections into one flat event stream,
// one CalendarEvent per record, each carrying its record's date verbatim.
// No ordering is applied and no date validation happens here; consumers
// that match events to calendar cells do so by string equality, so a
// malformed date simply never matches anything.
func Project(entries []TimeEntry, receipts []Receipt, invoices []Invoice, personal []PersonalEvent) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(entries)+len(receipts)+len(invoices)+len(personal))
	events = append(events, TimeEvents(entries)...)
	events = append(events, ReceiptEvents(receipts)...)
	events = append(events, InvoiceEvents(invoices)...)
	events = append(events, PersonalEvents(personal)...)
	return events
}

// TimeEvents projects a time-entry collection on its own. The per-screen
// views use these single-collection projections so the same Filter can
// serve every screen.
func TimeEvents(entries []TimeEntry) []CalendarEvent {
	events := make([]CalendarEvent, len(entries))
	for i, e := range entries {
		events[i] = CalendarEvent{Date: e.Date, Type: TypeTime, Entity: e}
	}
	return events
}

// ReceiptEvents projects a receipt collection on its own.
func ReceiptEvents(receipts []Receipt) []CalendarEvent {
	events := make([]CalendarEvent, len(receipts))
	for i, r := range receipts {
		events[i] = CalendarEvent{Date: r.Date, Type: TypeReceipt, Entity: r}
	}
	return events
}

// InvoiceEvents projects an invoice collection on its own. The issue
// date is the calendar date; due dates are display text.
func InvoiceEvents(invoices []Invoice) []CalendarEvent {
	events := make([]CalendarEvent, len(invoices))
	for i, inv := range invoices {
		events[i] = CalendarEvent{Date: inv.Date, Type: TypeInvoice, Entity: inv}
	}
	return events
}

// PersonalEvents projects a personal-event collection on its own.
func PersonalEvents(personal []PersonalEvent) []CalendarEvent {
	events := make([]CalendarEvent, len(personal))
	for i, p := range personal {
		events[i] = CalendarEvent{Date: p.Date, Type: TypePersonal, Entity: p}
	}
	return events
}

// JobSiteEvents projects job sites so site screens can share Filter.
// Sites have no date, so these events never reach a calendar cell.
func JobSiteEvents(sites []JobSite) []CalendarEvent {
	events := make([]CalendarEvent, len(sites))
	for i, s := range sites {
		events[i] = CalendarEvent{Date: "", Type: TypeJobSite, Entity: s}
	}
	return events
}
