package engine

type overrideKey struct {
	planID         string
	eventID        string
	originalZoneID string
}

// OverrideIndex is one immutable generation of the zone-mapping override
// index. It is built once and then only read; a newer generation replaces
// it wholesale via the Store's pointer swap.
type OverrideIndex struct {
	byKey map[overrideKey]ZoneMappingOverride
}

// BuildOverrideIndex groups overrides by (plan, event, original zone).
// When duplicates share a key, the most recently updated one wins; equal
// UpdatedAt falls back to the lexicographically greatest ID so the result
// is a total order regardless of input order.
func BuildOverrideIndex(overrides []ZoneMappingOverride) *OverrideIndex {
	idx := &OverrideIndex{byKey: make(map[overrideKey]ZoneMappingOverride, len(overrides))}
	for _, ov := range overrides {
		key := overrideKey{
			planID:         ov.SubscriptionPlanID,
			eventID:        ov.EventID,
			originalZoneID: ov.OriginalZoneID,
		}
		current, ok := idx.byKey[key]
		if !ok || supersedes(ov, current) {
			idx.byKey[key] = ov
		}
	}
	return idx
}

func supersedes(a, b ZoneMappingOverride) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}

// Lookup returns the authoritative override for the tuple, if any.
// Absence is not an error: it simply means no override applies.
func (idx *OverrideIndex) Lookup(planID, eventID, originalZoneID string) (ZoneMappingOverride, bool) {
	ov, ok := idx.byKey[overrideKey{planID: planID, eventID: eventID, originalZoneID: originalZoneID}]
	return ov, ok
}

func (idx *OverrideIndex) Len() int {
	return len(idx.byKey)
}
