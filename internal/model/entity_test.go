package model

import (
	"math"
	"testing"
)

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"morning block", "07:30", "12:00", 4.5},
		{"full day", "08:00", "15:30", 7.5},
		{"zero span", "09:00", "09:00", 0},
		{"quarter hour", "10:00", "10:15", 0.25},
		{"bad start", "7.30", "12:00", 0},
		{"bad end", "07:30", "noon", 0},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoursBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("HoursBetween(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSeedDurationsDeriveFromClockTimes(t *testing.T) {
	for _, e := range Seed().TimeEntries() {
		want := HoursBetween(e.StartTime, e.EndTime)
		if e.Duration != want {
			t.Errorf("%s: Duration = %v, want %v from %s-%s", e.ID, e.Duration, want, e.StartTime, e.EndTime)
		}
	}
}

func TestSeedInvoiceArithmetic(t *testing.T) {
	// The stored amounts follow subtotal = labor + materials and
	// total = subtotal + GST. Nothing validates these at runtime, so the
	// demo data must satisfy them itself.
	const eps = 0.005
	for _, inv := range Seed().Invoices() {
		if math.Abs(inv.Labor+inv.Materials-inv.Subtotal) > eps {
			t.Errorf("%s: subtotal %.2f != labor %.2f + materials %.2f",
				inv.InvoiceNumber, inv.Subtotal, inv.Labor, inv.Materials)
		}
		if math.Abs(inv.Subtotal+inv.GST-inv.Total) > eps {
			t.Errorf("%s: total %.2f != subtotal %.2f + GST %.2f",
				inv.InvoiceNumber, inv.Total, inv.Subtotal, inv.GST)
		}
	}
}

func TestSeedSingleRunningEntry(t *testing.T) {
	running := 0
	for _, e := range Seed().TimeEntries() {
		if e.Running {
			running++
		}
	}
	if running != 1 {
		t.Errorf("seed has %d running entries, want exactly 1", running)
	}
}

func TestEntityKinds(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		kind   EntityType
		date   string
	}{
		{"time entry", TimeEntry{Date: "2024-11-11"}, TypeTime, "2024-11-11"},
		{"receipt", Receipt{Date: "2024-11-12"}, TypeReceipt, "2024-11-12"},
		{"invoice", Invoice{Date: "2024-11-13"}, TypeInvoice, "2024-11-13"},
		{"personal", PersonalEvent{Date: "2024-11-14"}, TypePersonal, "2024-11-14"},
		{"job site", JobSite{}, TypeJobSite, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Kind(); got != tt.kind {
				t.Errorf("Kind() = %s, want %s", got, tt.kind)
			}
			if got := tt.entity.EventDate(); got != tt.date {
				t.Errorf("EventDate() = %q, want %q", got, tt.date)
			}
		})
	}
}
