package model

// Bucket is a named filter category. The first group filters the unified
// event stream by entity type; the rest narrow a single collection by its
// own status/category field and are offered only on that collection's
// screen. Applying a sub-bucket to a stream with no matching entity kind
// yields an empty result, not an error.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketTime     Bucket = "time"
	BucketReceipt  Bucket = "receipt"
	BucketInvoice  Bucket = "invoice"
	BucketPersonal Bucket = "personal"

	BucketBillable  Bucket = "billable"
	BucketOverhead  Bucket = "overhead"
	BucketDraft     Bucket = "draft"
	BucketSent      Bucket = "sent"
	BucketPaid      Bucket = "paid"
	BucketOverdue   Bucket = "overdue"
	BucketActive    Bucket = "active"
	BucketCompleted Bucket = "completed"
	BucketEvents    Bucket = "events"
	BucketTasks     Bucket = "tasks"
	BucketBills     Bucket = "bills"
)

// Label returns the bucket's display name.
func (b Bucket) Label() string {
	switch b {
	case BucketAll:
		return "All"
	case BucketTime:
		return "Time"
	case BucketReceipt:
		return "Receipts"
	case BucketInvoice:
		return "Invoices"
	case BucketPersonal:
		return "Personal"
	case BucketBillable:
		return "Billable"
	case BucketOverhead:
		return "Overhead"
	case BucketDraft:
		return "Draft"
	case BucketSent:
		return "Sent"
	case BucketPaid:
		return "Paid"
	case BucketOverdue:
		return "Overdue"
	case BucketActive:
		return "Active"
	case BucketCompleted:
		return "Completed"
	case BucketEvents:
		return "Events"
	case BucketTasks:
		return "Tasks"
	case BucketBills:
		return "Bills"
	}
	return string(b)
}

// Filter narrows an event stream to one bucket. BucketAll is the
// identity and returns the input slice unchanged.
func Filter(events []CalendarEvent, bucket Bucket) []CalendarEvent {
	if bucket == BucketAll {
		return events
	}
	out := make([]CalendarEvent, 0, len(events))
	for _, ev := range events {
		if Matches(ev, bucket) {
			out = append(out, ev)
		}
	}
	return out
}

// Matches reports whether one event belongs to a bucket.
func Matches(ev CalendarEvent, bucket Bucket) bool {
	switch bucket {
	case BucketAll:
		return true
	case BucketTime, BucketReceipt, BucketInvoice, BucketPersonal:
		return ev.Type == EntityType(bucket)
	case BucketBillable, BucketOverhead:
		r, ok := ev.Entity.(Receipt)
		return ok && r.Category == ReceiptCategory(bucket)
	case BucketDraft, BucketSent, BucketPaid, BucketOverdue:
		inv, ok := ev.Entity.(Invoice)
		return ok && inv.Status == InvoiceStatus(bucket)
	case BucketActive, BucketCompleted:
		site, ok := ev.Entity.(JobSite)
		return ok && site.Status == SiteStatus(bucket)
	case BucketEvents:
		p, ok := ev.Entity.(PersonalEvent)
		return ok && p.Category == PersonalEventCat
	case BucketTasks:
		p, ok := ev.Entity.(PersonalEvent)
		return ok && p.Category == PersonalTaskCat
	case BucketBills:
		p, ok := ev.Entity.(PersonalEvent)
		return ok && p.Category == PersonalBillCat
	}
	return false
}
