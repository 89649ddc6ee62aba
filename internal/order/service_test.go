package order

import (
	"testing"
	"time"

	"github.com/malokastory/elegance-backend/internal/storage"
)

func newTestService() *Service {
	return NewService(NewKVRepository(storage.NewMemoryStore()))
}

func validDraft() Draft {
	return Draft{
		CustomerName: "سارة",
		PhoneNumber:  "+20 100 000 0000",
		Address:      "القاهرة",
		Items: []Item{
			{ProductID: "p1", ProductName: "Silver Ring", Quantity: 2, Price: 150, ProductImage: "imgA"},
		},
	}
}

func TestCreate_StampsPendingAndOrderDate(t *testing.T) {
	svc := newTestService()
	before := time.Now().UTC().Add(-time.Second)

	created, err := svc.Create(validDraft())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected Pending, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	stamp, err := time.Parse(time.RFC3339, created.OrderDate)
	if err != nil {
		t.Fatalf("orderDate is not RFC3339: %v", err)
	}
	if stamp.Before(before) {
		t.Fatalf("orderDate %v is before the call time", stamp)
	}
}

func TestCreate_TotalIsSnapshotSum(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(validDraft())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.TotalAmount != 300 {
		t.Fatalf("expected total 300 (150 x 2), got %v", created.TotalAmount)
	}
}

func TestCreate_RejectsInvalidDrafts(t *testing.T) {
	svc := newTestService()
	cases := []Draft{
		{},
		{CustomerName: "a", PhoneNumber: "b", Address: "c"},
		{CustomerName: "a", PhoneNumber: "b", Address: "c", Items: []Item{{Quantity: 0, Price: 10}}},
	}
	for i, d := range cases {
		if _, err := svc.Create(d); err != ErrValidation {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAdvanceStatus_FullCycleReturnsToPending(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(validDraft())

	want := []Status{StatusProcessed, StatusShipped, StatusDelivered, StatusPending}
	for _, expected := range want {
		got, err := svc.AdvanceStatus(created.ID)
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if got.Status != expected {
			t.Fatalf("expected %s, got %s", expected, got.Status)
		}
	}
}

func TestAdvanceStatus_UnknownOrder(t *testing.T) {
	svc := newTestService()
	if _, err := svc.AdvanceStatus("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(validDraft())
	if _, err := svc.UpdateStatus(created.ID, Status("Lost")); err != ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreate_TotalNotRecomputedAfterwards(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create(validDraft())

	// advancing status must leave the snapshot total alone
	advanced, err := svc.AdvanceStatus(created.ID)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if advanced.TotalAmount != created.TotalAmount {
		t.Fatalf("total changed from %v to %v", created.TotalAmount, advanced.TotalAmount)
	}
}
