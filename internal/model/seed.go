package model

// Seed returns the demo data set. All of it is hard-coded; nothing in
// the app writes back. Dates cluster around November 2024 so the
// calendar screens have something to show out of the box.
func Seed() *Store {
	entries := []TimeEntry{
		{ID: "t1", JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", Date: "2024-11-11", StartTime: "07:30", EndTime: "12:00", Duration: HoursBetween("07:30", "12:00"), Amount: 382.50, Status: StatusUnbilled},
		{ID: "t2", JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", Date: "2024-11-11", StartTime: "12:30", EndTime: "16:00", Duration: HoursBetween("12:30", "16:00"), Amount: 297.50, Status: StatusUnbilled},
		{ID: "t3", JobSiteID: "js2", JobSiteName: "Harbour View Deck", Date: "2024-11-12", StartTime: "08:00", EndTime: "15:30", Duration: HoursBetween("08:00", "15:30"), Amount: 637.50, Status: StatusUnbilled},
		{ID: "t4", JobSiteID: "js3", JobSiteName: "Kenmore Kitchen Fit-out", Date: "2024-11-13", StartTime: "07:00", EndTime: "14:00", Duration: HoursBetween("07:00", "14:00"), Amount: 630.00, Status: StatusInvoiced},
		{ID: "t5", JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", Date: "2024-11-14", StartTime: "08:30", EndTime: "16:30", Duration: HoursBetween("08:30", "16:30"), Amount: 680.00, Status: StatusUnbilled},
		{ID: "t6", JobSiteID: "js2", JobSiteName: "Harbour View Deck", Date: "2024-11-15", StartTime: "07:30", EndTime: "11:30", Duration: HoursBetween("07:30", "11:30"), Amount: 340.00, Status: StatusUnbilled},
		{ID: "t7", JobSiteID: "js4", JobSiteName: "Stafford Bathroom Reno", Date: "2024-11-08", StartTime: "09:00", EndTime: "17:00", Duration: HoursBetween("09:00", "17:00"), Amount: 680.00, Status: StatusInvoiced},
		{ID: "t8", JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", Date: "2024-11-18", StartTime: "08:30", EndTime: "11:00", Duration: HoursBetween("08:30", "11:00"), Amount: 212.50, Status: StatusUnbilled, Running: true},
	}

	receipts := []Receipt{
		{ID: "r1", Vendor: "Bunnings Warehouse", Date: "2024-11-11", Total: 247.80, GST: 22.53, Category: CategoryBillable, JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", ItemCount: 14},
		{ID: "r2", Vendor: "Reece Plumbing", Date: "2024-11-12", Total: 489.50, GST: 44.50, Category: CategoryBillable, JobSiteID: "js3", JobSiteName: "Kenmore Kitchen Fit-out", ItemCount: 6},
		{ID: "r3", Vendor: "Shell Coles Express", Date: "2024-11-13", Total: 92.40, GST: 8.40, Category: CategoryOverhead, ItemCount: 1},
		{ID: "r4", Vendor: "Mitre 10", Date: "2024-11-14", Total: 156.20, GST: 14.20, Category: CategoryBillable, JobSiteID: "js2", JobSiteName: "Harbour View Deck", ItemCount: 9},
		{ID: "r5", Vendor: "Officeworks", Date: "2024-11-08", Total: 64.90, GST: 5.90, Category: CategoryOverhead, ItemCount: 3},
		{ID: "r6", Vendor: "Total Tools", Date: "2024-11-15", Total: 329.00, GST: 29.91, Category: CategoryOverhead, ItemCount: 2},
	}

	invoices := []Invoice{
		{ID: "i1", InvoiceNumber: "INV-2024-041", JobSiteID: "js4", JobSiteName: "Stafford Bathroom Reno", ClientName: "Sarah Mitchell", Date: "2024-11-12", DueDate: "2024-11-26", Labor: 2720.00, Materials: 1340.00, Subtotal: 4060.00, GST: 406.00, Total: 4466.00, Status: InvoiceSent},
		{ID: "i2", InvoiceNumber: "INV-2024-040", JobSiteID: "js3", JobSiteName: "Kenmore Kitchen Fit-out", ClientName: "David Chen", Date: "2024-11-05", DueDate: "2024-11-19", Labor: 1890.00, Materials: 2210.00, Subtotal: 4100.00, GST: 410.00, Total: 4510.00, Status: InvoicePaid},
		{ID: "i3", InvoiceNumber: "INV-2024-039", JobSiteID: "js5", JobSiteName: "Ashgrove Pergola", ClientName: "Emma Walsh", Date: "2024-10-22", DueDate: "2024-11-05", Labor: 1360.00, Materials: 890.00, Subtotal: 2250.00, GST: 225.00, Total: 2475.00, Status: InvoiceOverdue},
		{ID: "i4", InvoiceNumber: "INV-2024-042", JobSiteID: "js1", JobSiteName: "Bridge Street Renovation", ClientName: "Tom Barker", Date: "2024-11-15", DueDate: "2024-11-29", Labor: 1700.00, Materials: 520.00, Subtotal: 2220.00, GST: 222.00, Total: 2442.00, Status: InvoiceDraft},
		{ID: "i5", InvoiceNumber: "INV-2024-038", JobSiteID: "js2", JobSiteName: "Harbour View Deck", ClientName: "Lisa Nguyen", Date: "2024-10-28", DueDate: "2024-11-11", Labor: 2040.00, Materials: 1780.00, Subtotal: 3820.00, GST: 382.00, Total: 4202.00, Status: InvoicePaid},
	}

	sites := []JobSite{
		{ID: "js1", Name: "Bridge Street Renovation", ClientName: "Tom Barker", Address: "42 Bridge St, West End", Status: SiteActive, HourlyRate: 85.00, TotalHours: 64.5, TotalExpenses: 1840.00, TotalRevenue: 5482.50, GeofenceRadius: 150, Lat: -27.4810, Lng: 153.0101},
		{ID: "js2", Name: "Harbour View Deck", ClientName: "Lisa Nguyen", Address: "8 Seaview Tce, Manly", Status: SiteActive, HourlyRate: 85.00, TotalHours: 38.0, TotalExpenses: 920.00, TotalRevenue: 3230.00, GeofenceRadius: 100, Lat: -27.4532, Lng: 153.1880},
		{ID: "js3", Name: "Kenmore Kitchen Fit-out", ClientName: "David Chen", Address: "17 Moggill Rd, Kenmore", Status: SiteActive, HourlyRate: 90.00, TotalHours: 51.5, TotalExpenses: 2670.00, TotalRevenue: 4635.00, GeofenceRadius: 120},
		{ID: "js4", Name: "Stafford Bathroom Reno", ClientName: "Sarah Mitchell", Address: "3 Webster Rd, Stafford", Status: SiteCompleted, HourlyRate: 85.00, TotalHours: 32.0, TotalExpenses: 1340.00, TotalRevenue: 4466.00, GeofenceRadius: 100},
		{ID: "js5", Name: "Ashgrove Pergola", ClientName: "Emma Walsh", Address: "55 Waterworks Rd, Ashgrove", Status: SiteCompleted, HourlyRate: 80.00, TotalHours: 17.0, TotalExpenses: 890.00, TotalRevenue: 2475.00, GeofenceRadius: 80},
	}

	personal := []PersonalEvent{
		{ID: "p1", Title: "Soccer training pickup", Date: "2024-11-11", Time: "17:30", Duration: "1h", Location: "Newmarket Oval", Category: PersonalEventCat},
		{ID: "p2", Title: "Pay rego", Date: "2024-11-13", Category: PersonalBillCat},
		{ID: "p3", Title: "Dentist", Date: "2024-11-14", Time: "09:15", Duration: "45m", Location: "City Dental", Category: PersonalEventCat},
		{ID: "p4", Title: "Service the ute", Date: "2024-11-20", Time: "08:00", Duration: "3h", Category: PersonalTaskCat},
		{ID: "p5", Title: "Electricity bill due", Date: "2024-11-18", Category: PersonalBillCat},
		{ID: "p6", Title: "Quote follow-up calls", Date: "2024-11-12", Time: "16:30", Category: PersonalTaskCat},
	}

	return NewStore(entries, receipts, invoices, sites, personal)
}
