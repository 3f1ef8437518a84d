package model

import "testing"

func fixtureStore() *Store {
	return Seed()
}

func TestFilterAllIsIdentity(t *testing.T) {
	events := fixtureStore().Events()
	got := Filter(events, BucketAll)
	if len(got) != len(events) {
		t.Fatalf("BucketAll changed length: %d -> %d", len(events), len(got))
	}
	if &got[0] != &events[0] {
		t.Error("BucketAll should return the input slice unchanged")
	}
}

func TestFilterByTypePartitionsStream(t *testing.T) {
	store := fixtureStore()
	events := store.Events()

	tests := []struct {
		bucket Bucket
		want   int
	}{
		{BucketTime, len(store.TimeEntries())},
		{BucketReceipt, len(store.Receipts())},
		{BucketInvoice, len(store.Invoices())},
		{BucketPersonal, len(store.Personal())},
	}
	sum := 0
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			got := Filter(events, tt.bucket)
			if len(got) != tt.want {
				t.Errorf("Filter(%s) = %d events, want %d", tt.bucket, len(got), tt.want)
			}
			for _, ev := range got {
				if ev.Type != EntityType(tt.bucket) {
					t.Errorf("Filter(%s) leaked a %s event", tt.bucket, ev.Type)
				}
			}
		})
		sum += tt.want
	}
	if sum != len(events) {
		t.Errorf("type buckets cover %d of %d events", sum, len(events))
	}
}

func TestFilterReceiptCategories(t *testing.T) {
	events := ReceiptEvents(fixtureStore().Receipts())
	billable := Filter(events, BucketBillable)
	overhead := Filter(events, BucketOverhead)
	if len(billable)+len(overhead) != len(events) {
		t.Errorf("categories cover %d of %d receipts", len(billable)+len(overhead), len(events))
	}
	for _, ev := range billable {
		if ev.Entity.(Receipt).Category != CategoryBillable {
			t.Error("overhead receipt in billable bucket")
		}
	}
}

func TestFilterInvoiceStatuses(t *testing.T) {
	events := InvoiceEvents(fixtureStore().Invoices())
	total := 0
	for _, b := range []Bucket{BucketDraft, BucketSent, BucketPaid, BucketOverdue} {
		got := Filter(events, b)
		for _, ev := range got {
			if ev.Entity.(Invoice).Status != InvoiceStatus(b) {
				t.Errorf("Filter(%s) leaked status %s", b, ev.Entity.(Invoice).Status)
			}
		}
		total += len(got)
	}
	if total != len(events) {
		t.Errorf("status buckets cover %d of %d invoices", total, len(events))
	}
}

func TestFilterSiteStatuses(t *testing.T) {
	events := JobSiteEvents(fixtureStore().JobSites())
	active := Filter(events, BucketActive)
	completed := Filter(events, BucketCompleted)
	if len(active) != 3 || len(completed) != 2 {
		t.Errorf("Filter = %d active, %d completed, want 3 and 2", len(active), len(completed))
	}
}

func TestFilterPersonalCategories(t *testing.T) {
	events := PersonalEvents(fixtureStore().Personal())
	tests := []struct {
		bucket Bucket
		cat    PersonalCategory
	}{
		{BucketEvents, PersonalEventCat},
		{BucketTasks, PersonalTaskCat},
		{BucketBills, PersonalBillCat},
	}
	total := 0
	for _, tt := range tests {
		got := Filter(events, tt.bucket)
		for _, ev := range got {
			if ev.Entity.(PersonalEvent).Category != tt.cat {
				t.Errorf("Filter(%s) leaked category %s", tt.bucket, ev.Entity.(PersonalEvent).Category)
			}
		}
		total += len(got)
	}
	if total != len(events) {
		t.Errorf("personal buckets cover %d of %d events", total, len(events))
	}
}

func TestFilterWrongContextYieldsEmpty(t *testing.T) {
	// A status bucket applied to a stream holding no entity of its kind
	// matches nothing rather than erroring.
	events := TimeEvents(fixtureStore().TimeEntries())
	tests := []Bucket{BucketDraft, BucketBillable, BucketActive, BucketTasks}
	for _, b := range tests {
		if got := Filter(events, b); len(got) != 0 {
			t.Errorf("Filter(%s) over time entries = %d events, want 0", b, len(got))
		}
	}
}

func TestBucketLabels(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketAll, "All"},
		{BucketReceipt, "Receipts"},
		{BucketOverdue, "Overdue"},
		{BucketTasks, "Tasks"},
	}
	for _, tt := range tests {
		if got := tt.bucket.Label(); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}
