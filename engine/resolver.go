package engine

import "context"

// ZoneCatalog supplies the set of valid zone identifiers for an event's
// venue. It is an external collaborator: the engine does not care whether
// it is backed by a database, a cache or a fixture.
type ZoneCatalog interface {
	ZonesForEvent(ctx context.Context, eventID string) ([]string, error)
}

// ZoneResolver computes the effective zone a ticket is issued against.
type ZoneResolver struct {
	zones ZoneCatalog
}

func NewZoneResolver(zones ZoneCatalog) *ZoneResolver {
	return &ZoneResolver{zones: zones}
}

// Resolve returns the override's destination zone when the index holds an
// override for (plan, event, baseline zone), and the baseline zone
// otherwise. An override destination is validated against the event's
// venue zone catalog here rather than at write time, because the venue
// layout for an event may be assigned after the override is created.
func (r *ZoneResolver) Resolve(ctx context.Context, idx *OverrideIndex, planID, eventID, baselineZoneID string) (string, error) {
	ov, ok := idx.Lookup(planID, eventID, baselineZoneID)
	if !ok {
		return baselineZoneID, nil
	}

	zones, err := r.zones.ZonesForEvent(ctx, eventID)
	if err != nil {
		return "", err
	}
	for _, zone := range zones {
		if zone == ov.OverrideZoneID {
			return ov.OverrideZoneID, nil
		}
	}
	return "", &DanglingOverrideError{
		OverrideID: ov.ID,
		EventID:    eventID,
		ZoneID:     ov.OverrideZoneID,
	}
}
