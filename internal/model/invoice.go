package model

// InvoiceStatus is the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is a billing document for a job site. The monetary breakdown
// follows the display convention Subtotal = Labor + Materials and
// Total = Subtotal + GST; neither identity is validated here.
type Invoice struct {
	ID            string
	InvoiceNumber string
	JobSiteID     string
	JobSiteName   string
	ClientName    string
	Date          string
	DueDate       string
	Labor         float64
	Materials     float64
	Subtotal      float64
	GST           float64
	Total         float64
	Status        InvoiceStatus
}

func (i Invoice) Kind() EntityType  { return TypeInvoice }
func (i Invoice) EventDate() string { return i.Date }
