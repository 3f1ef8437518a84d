package model

// SiteStatus is whether a job site is still being worked
type SiteStatus string

const (
	SiteActive    SiteStatus = "active"
	SiteCompleted SiteStatus = "completed"
)

// JobSite is a work location with aggregate totals. GeofenceRadius and
// the coordinates are display text only; no geolocation runs in this app.
type JobSite struct {
	ID             string
	Name           string
	ClientName     string
	Address        string
	Status         SiteStatus
	HourlyRate     float64
	TotalHours     float64
	TotalExpenses  float64
	TotalRevenue   float64
	GeofenceRadius int // meters
	Lat            float64
	Lng            float64
}

func (j JobSite) Kind() EntityType { return TypeJobSite }

// EventDate returns "". Job sites have no calendar date and never land
// on a calendar cell.
func (j JobSite) EventDate() string { return "" }
