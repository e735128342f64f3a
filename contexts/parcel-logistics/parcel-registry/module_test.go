package parcelregistry

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	httptransport "parcelhub/contexts/parcel-logistics/parcel-registry/transport/http"
)

func TestCreateParcelDefaultsToUnpaid(t *testing.T) {
	module := NewInMemoryModule(nil, nil)

	resp, err := module.Handler.CreateParcelHandler(context.Background(), "", httptransport.CreateParcelRequest{
		"created_by":     "A@x.com",
		"weight":         2,
		"payment_status": "paid",
	})
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}
	if resp.Parcel.PaymentStatus != "unpaid" {
		t.Fatalf("expected unpaid status, got %s", resp.Parcel.PaymentStatus)
	}
	if resp.Parcel.CreatedBy != "a@x.com" {
		t.Fatalf("unexpected owner %s", resp.Parcel.CreatedBy)
	}
	if resp.Parcel.TrackingCode == "" {
		t.Fatal("expected generated tracking code")
	}
	if _, ok := resp.Parcel.Details["payment_status"]; ok {
		t.Fatal("payment_status must not be taken from the payload")
	}
	if resp.Parcel.Details["weight"] != 2 {
		t.Fatalf("expected weight detail to be kept, got %v", resp.Parcel.Details["weight"])
	}
}

func TestCreateParcelRequiresOwner(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	_, err := module.Handler.CreateParcelHandler(context.Background(), "", httptransport.CreateParcelRequest{"weight": 1})
	if !errors.Is(err, domainerrors.ErrInvalidOwner) {
		t.Fatalf("expected invalid owner, got %v", err)
	}
}

func TestListMyParcelsNewestFirstAndFiltered(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	ctx := context.Background()

	var ids []string
	for _, owner := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		resp, err := module.Handler.CreateParcelHandler(ctx, owner, httptransport.CreateParcelRequest{})
		if err != nil {
			t.Fatalf("create parcel failed: %v", err)
		}
		ids = append(ids, resp.InsertedID)
	}

	mine, err := module.Handler.ListMyParcelsHandler(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("list parcels failed: %v", err)
	}
	if len(mine.Items) != 2 {
		t.Fatalf("expected 2 parcels, got %d", len(mine.Items))
	}
	if mine.Items[0].ParcelID != ids[2] || mine.Items[1].ParcelID != ids[0] {
		t.Fatalf("expected newest first, got %s then %s", mine.Items[0].ParcelID, mine.Items[1].ParcelID)
	}

	all, err := module.Handler.ListMyParcelsHandler(ctx, "")
	if err != nil {
		t.Fatalf("list all parcels failed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected 3 parcels without owner filter, got %d", len(all.Items))
	}
}

func TestMarkPaidIsOneWay(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	ctx := context.Background()
	created, err := module.Handler.CreateParcelHandler(ctx, "a@x.com", httptransport.CreateParcelRequest{})
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	paid, err := module.MarkPaid.Execute(ctx, created.InsertedID)
	if err != nil {
		t.Fatalf("first mark paid failed: %v", err)
	}
	if !paid.IsPaid() || paid.PaidAt == nil {
		t.Fatalf("expected paid parcel with timestamp, got %+v", paid)
	}

	_, err = module.MarkPaid.Execute(ctx, created.InsertedID)
	if !errors.Is(err, domainerrors.ErrParcelAlreadyPaid) || !errors.Is(err, domainerrors.ErrNotFoundOrAlreadyPaid) {
		t.Fatalf("expected already paid rejection, got %v", err)
	}

	_, err = module.MarkPaid.Execute(ctx, "missing")
	if !errors.Is(err, domainerrors.ErrParcelNotFound) || !errors.Is(err, domainerrors.ErrNotFoundOrAlreadyPaid) {
		t.Fatalf("expected not found rejection, got %v", err)
	}
}

func TestMarkPaidConcurrentSingleWinner(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	ctx := context.Background()
	created, err := module.Handler.CreateParcelHandler(ctx, "a@x.com", httptransport.CreateParcelRequest{})
	if err != nil {
		t.Fatalf("create parcel failed: %v", err)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := module.MarkPaid.Execute(ctx, created.InsertedID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful transition, got %d", successes)
	}
}

func TestDeleteMissingParcelReportsZero(t *testing.T) {
	module := NewInMemoryModule(nil, nil)
	ctx := context.Background()

	resp, err := module.Handler.DeleteParcelHandler(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("delete missing parcel should not fail: %v", err)
	}
	if resp.DeletedCount != 0 {
		t.Fatalf("expected zero deleted, got %d", resp.DeletedCount)
	}

	created, _ := module.Handler.CreateParcelHandler(ctx, "a@x.com", httptransport.CreateParcelRequest{})
	resp, err = module.Handler.DeleteParcelHandler(ctx, created.InsertedID)
	if err != nil || resp.DeletedCount != 1 {
		t.Fatalf("expected one deleted, got %d err=%v", resp.DeletedCount, err)
	}
	if _, err := module.Handler.GetParcelHandler(ctx, created.InsertedID); !errors.Is(err, domainerrors.ErrParcelNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
