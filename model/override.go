package model

import "gorm.io/datatypes"

// ZoneMappingOverride redirects a plan's baseline zone for one specific
// event, when that event runs under a different venue layout (closed
// stand, relocated match, VIP reconfiguration). Plan and event references
// are immutable after creation; only the destination zone and metadata
// may change.
type ZoneMappingOverride struct {
	DTO
	PublicCode         string            `gorm:"size:40;uniqueIndex;not null" json:"publicCode"`
	SubscriptionPlanId uint              `gorm:"not null;index:idx_override_tuple,priority:1" json:"subscriptionPlanId"`
	EventId            uint              `gorm:"not null;index:idx_override_tuple,priority:2" json:"eventId"`
	OriginalZoneId     string            `gorm:"size:30;not null;index:idx_override_tuple,priority:3" json:"originalZoneId"`
	OverrideZoneId     string            `gorm:"size:30;not null" json:"overrideZoneId"`
	Metadata           datatypes.JSONMap `json:"metadata,omitempty"`

	SubscriptionPlan SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanId" json:"-"`
	Event            Event            `gorm:"foreignKey:EventId" json:"-"`
}

type CreateOverrideInput struct {
	SubscriptionPlanId uint           `json:"subscriptionPlanId" validate:"required,gt=0"`
	EventId            uint           `json:"eventId" validate:"required,gt=0"`
	OriginalZoneId     string         `json:"originalZoneId" validate:"required"`
	OverrideZoneId     string         `json:"overrideZoneId" validate:"required"`
	Metadata           map[string]any `json:"metadata" validate:"omitempty"`
}

type EditOverrideInput struct {
	OverrideZoneId string         `json:"overrideZoneId" validate:"omitempty"`
	Metadata       map[string]any `json:"metadata" validate:"omitempty"`
}

type FilterOverrideInput struct {
	Pagination
	SubscriptionPlanId uint `json:"subscriptionPlanId" validate:"omitempty,gt=0"`
	EventId            uint `json:"eventId" validate:"omitempty,gt=0"`
}
