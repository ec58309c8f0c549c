package engine

import (
	"testing"
	"time"
)

func TestBuildOverrideIndex(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("lookup misses when no override matches", func(t *testing.T) {
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: base},
		})

		if _, ok := idx.Lookup("P1", "E2", "Z-A"); ok {
			t.Fatalf("expected miss for different event")
		}
		if _, ok := idx.Lookup("P2", "E1", "Z-A"); ok {
			t.Fatalf("expected miss for different plan")
		}
		if _, ok := idx.Lookup("P1", "E1", "Z-C"); ok {
			t.Fatalf("expected miss for different zone")
		}
	})

	t.Run("lookup returns the single override for its key", func(t *testing.T) {
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: base},
		})

		ov, ok := idx.Lookup("P1", "E1", "Z-A")
		if !ok {
			t.Fatalf("expected hit")
		}
		if ov.OverrideZoneID != "Z-B" {
			t.Fatalf("expected Z-B, got %s", ov.OverrideZoneID)
		}
	})

	t.Run("most recently updated duplicate wins", func(t *testing.T) {
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: base.Add(time.Hour)},
			{ID: "ov-2", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-C", UpdatedAt: base},
		})

		if idx.Len() != 1 {
			t.Fatalf("expected one retained override, got %d", idx.Len())
		}
		ov, _ := idx.Lookup("P1", "E1", "Z-A")
		if ov.ID != "ov-1" {
			t.Fatalf("expected ov-1 to win, got %s", ov.ID)
		}
	})

	t.Run("equal updatedAt breaks ties by greatest id", func(t *testing.T) {
		// Same records in both input orders must retain the same winner.
		a := ZoneMappingOverride{ID: "ov-a", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: base}
		b := ZoneMappingOverride{ID: "ov-b", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-C", UpdatedAt: base}

		for _, input := range [][]ZoneMappingOverride{{a, b}, {b, a}} {
			ov, _ := BuildOverrideIndex(input).Lookup("P1", "E1", "Z-A")
			if ov.ID != "ov-b" {
				t.Fatalf("expected ov-b to win regardless of order, got %s", ov.ID)
			}
		}
	})

	t.Run("distinct keys do not collide", func(t *testing.T) {
		idx := BuildOverrideIndex([]ZoneMappingOverride{
			{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: base},
			{ID: "ov-2", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-B", OverrideZoneID: "Z-C", UpdatedAt: base},
			{ID: "ov-3", SubscriptionPlanID: "P2", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-D", UpdatedAt: base},
		})

		if idx.Len() != 3 {
			t.Fatalf("expected 3 entries, got %d", idx.Len())
		}
	})
}
