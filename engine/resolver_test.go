package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeZoneCatalog struct {
	zones map[string][]string
	err   error
}

func (f *fakeZoneCatalog) ZonesForEvent(_ context.Context, eventID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.zones[eventID], nil
}

func TestZoneResolver_Resolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	catalog := &fakeZoneCatalog{zones: map[string][]string{
		"E1": {"Z-A", "Z-B", "Z-VIP"},
	}}

	t.Run("no override returns baseline unchanged", func(t *testing.T) {
		resolver := NewZoneResolver(catalog)
		idx := BuildOverrideIndex(nil)

		zone, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if zone != "Z-A" {
			t.Fatalf("expected baseline Z-A, got %s", zone)
		}
	})

	t.Run("override redirects to its destination zone", func(t *testing.T) {
		resolver := NewZoneResolver(catalog)
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: now},
		})

		zone, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if zone != "Z-B" {
			t.Fatalf("expected Z-B, got %s", zone)
		}
	})

	t.Run("dangling destination fails instead of silently falling back", func(t *testing.T) {
		resolver := NewZoneResolver(catalog)
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-CLOSED", UpdatedAt: now},
		})

		_, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		var dangling *DanglingOverrideError
		if !errors.As(err, &dangling) {
			t.Fatalf("expected DanglingOverrideError, got %v", err)
		}
		if dangling.ZoneID != "Z-CLOSED" || dangling.OverrideID != "ov-1" {
			t.Fatalf("unexpected error detail: %+v", dangling)
		}
	})

	t.Run("zone catalog failure propagates", func(t *testing.T) {
		boom := errors.New("venue service down")
		resolver := NewZoneResolver(&fakeZoneCatalog{err: boom})
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: now},
		})

		_, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		if !errors.Is(err, boom) {
			t.Fatalf("expected collaborator error, got %v", err)
		}
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		resolver := NewZoneResolver(catalog)
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: now},
		})

		first, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := resolver.Resolve(context.Background(), idx, "P1", "E1", "Z-A")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if first != second {
			t.Fatalf("expected identical results, got %s then %s", first, second)
		}
	})
}
