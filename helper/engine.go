package helper

import (
	"club_ticketing/database"
	"club_ticketing/engine"
	"club_ticketing/model"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"
)

// EngineStore is the process-wide issuance engine. Handlers trigger a
// synchronous rebuild after every template/override write; a stale index
// could ticket a holder into a retracted zone, so there is no
// eventual-consistency window between a write and the next read.
var EngineStore *engine.Store

func InitEngine() {
	source := &gormEngineSource{}
	EngineStore = engine.NewStore(source, &gormZoneCatalog{})
	if err := EngineStore.Rebuild(context.Background()); err != nil {
		log.Printf("initial engine build failed: %v", err)
	}
}

// gormEngineSource projects the authoritative override/template rows into
// the engine's read-only snapshot types.
type gormEngineSource struct{}

func (s *gormEngineSource) ListZoneMappingOverrides(ctx context.Context) ([]engine.ZoneMappingOverride, error) {
	var rows []model.ZoneMappingOverride
	if err := database.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	overrides := make([]engine.ZoneMappingOverride, 0, len(rows))
	for _, row := range rows {
		overrides = append(overrides, engine.ZoneMappingOverride{
			ID:                 row.PublicCode,
			SubscriptionPlanID: strconv.FormatUint(uint64(row.SubscriptionPlanId), 10),
			EventID:            strconv.FormatUint(uint64(row.EventId), 10),
			OriginalZoneID:     row.OriginalZoneId,
			OverrideZoneID:     row.OverrideZoneId,
			Metadata:           row.Metadata,
			CreatedAt:          row.CreatedAt,
			UpdatedAt:          row.UpdatedAt,
		})
	}
	return overrides, nil
}

func (s *gormEngineSource) ListTicketTemplates(ctx context.Context) ([]engine.TicketTemplate, error) {
	var rows []model.TicketTemplate
	if err := database.DB.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	templates := make([]engine.TicketTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, engine.TicketTemplate{
			ID:          row.PublicCode,
			Type:        row.TemplateType,
			Format:      row.TemplateFormat,
			Orientation: row.Orientation,
			Name:        row.Name,
			Content:     row.TemplateContent,
			Active:      row.IsActive,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return templates, nil
}

// gormZoneCatalog answers "which zones exist for this event's venue".
type gormZoneCatalog struct{}

func (z *gormZoneCatalog) ZonesForEvent(ctx context.Context, eventID string) ([]string, error) {
	id, err := strconv.ParseUint(eventID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid event id %q", eventID)
	}

	var event model.Event
	if err := database.DB.WithContext(ctx).First(&event, uint(id)).Error; err != nil {
		return nil, err
	}

	var zones []model.VenueZone
	if err := database.DB.WithContext(ctx).
		Where("venue_id = ? AND deleted_at IS NULL", event.VenueId).
		Find(&zones).Error; err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(zones))
	for _, zone := range zones {
		codes = append(codes, zone.Code)
	}
	return codes, nil
}

// BaselineZoneForPlan is the subscription-plan collaborator: the zone a
// plan entitles its holder to at the event's venue.
func BaselineZoneForPlan(planId uint, eventId uint) (string, error) {
	var event model.Event
	if err := database.DB.First(&event, eventId).Error; err != nil {
		return "", err
	}

	var assignment model.PlanZoneAssignment
	err := database.DB.
		Where("subscription_plan_id = ? AND venue_id = ? AND deleted_at IS NULL", planId, event.VenueId).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return assignment.ZoneCode, nil
}

// RebuildEngine refreshes both generations and logs failures instead of
// propagating them: the previous generation keeps serving.
func RebuildEngine(ctx context.Context) {
	if EngineStore == nil {
		return
	}
	if err := EngineStore.Rebuild(ctx); err != nil {
		log.Printf("engine rebuild failed: %v", err)
	}
}
