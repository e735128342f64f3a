package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/adapters/memory"
	"parcelhub/contexts/parcel-logistics/tracking-log/application"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
)

type stubClock struct {
	times []time.Time
	index int
}

func (c *stubClock) Now() time.Time {
	value := c.times[c.index]
	if c.index < len(c.times)-1 {
		c.index++
	}
	return value
}

func TestAppendNeverMovesBackwards(t *testing.T) {
	store := memory.NewStore(nil)
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := &stubClock{times: []time.Time{base, base.Add(-time.Hour), base}}
	service := application.Service{Repo: store, Clock: clock, IDGenerator: store}

	var last time.Time
	for i, status := range []string{"picked_up", "in_transit", "delivered"} {
		event, err := service.Append(context.Background(), application.AppendCommand{
			TrackingCode: "TRK1",
			ParcelID:     "P1",
			Status:       status,
			UpdatedBy:    "Rider@X.com",
		})
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
		if i > 0 && !event.RecordedAt.After(last) {
			t.Fatalf("expected %s after %s", event.RecordedAt, last)
		}
		if event.UpdatedBy != "rider@x.com" {
			t.Fatalf("unexpected updater %s", event.UpdatedBy)
		}
		last = event.RecordedAt
	}

	items, err := service.ListByTrackingCode(context.Background(), "TRK1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 || items[0].Status != "picked_up" || items[2].Status != "delivered" {
		t.Fatalf("unexpected history %+v", items)
	}
}

func TestAppendClampIsPerTrackingCode(t *testing.T) {
	store := memory.NewStore(nil)
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	clock := &stubClock{times: []time.Time{base, base.Add(-time.Hour)}}
	service := application.Service{Repo: store, Clock: clock, IDGenerator: store}

	if _, err := service.Append(context.Background(), application.AppendCommand{TrackingCode: "A"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	other, err := service.Append(context.Background(), application.AppendCommand{TrackingCode: "B"})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if !other.RecordedAt.Equal(base.Add(-time.Hour)) {
		t.Fatalf("expected unclamped timestamp for a new code, got %s", other.RecordedAt)
	}
	if other.Status != "update" {
		t.Fatalf("expected default status, got %s", other.Status)
	}
}

func TestAppendRequiresTrackingCode(t *testing.T) {
	store := memory.NewStore(nil)
	service := application.Service{Repo: store, IDGenerator: store}

	_, err := service.Append(context.Background(), application.AppendCommand{ParcelID: "P1", Status: "paid"})
	if !errors.Is(err, domainerrors.ErrInvalidTrackingEvent) {
		t.Fatalf("expected invalid tracking event, got %v", err)
	}
	if _, err := service.ListByParcel(context.Background(), " "); !errors.Is(err, domainerrors.ErrInvalidQuery) {
		t.Fatalf("expected invalid query, got %v", err)
	}
}

func TestListByParcelSpansCodes(t *testing.T) {
	store := memory.NewStore(nil)
	service := application.Service{Repo: store, IDGenerator: store}

	for _, code := range []string{"A", "B"} {
		if _, err := service.Append(context.Background(), application.AppendCommand{TrackingCode: code, ParcelID: "P9"}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	items, err := service.ListByParcel(context.Background(), "P9")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 || items[0].Sequence >= items[1].Sequence {
		t.Fatalf("unexpected parcel history %+v", items)
	}
}
