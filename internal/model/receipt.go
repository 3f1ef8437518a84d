package model

// ReceiptCategory splits receipts into job-billable and overhead spend
type ReceiptCategory string

const (
	CategoryBillable ReceiptCategory = "billable"
	CategoryOverhead ReceiptCategory = "overhead"
)

// Receipt is a recorded purchase. GST is the tax component already
// included in Total. Billable receipts carry a job-site reference;
// overhead receipts usually leave it empty.
type Receipt struct {
	ID          string
	Vendor      string
	Date        string
	Total       float64
	GST         float64
	Category    ReceiptCategory
	JobSiteID   string
	JobSiteName string
	ItemCount   int
}

func (r Receipt) Kind() EntityType  { return TypeReceipt }
func (r Receipt) EventDate() string { return r.Date }
