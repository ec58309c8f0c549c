package model

type SubscriptionPlan struct {
	DTO
	Name   string `gorm:"size:100;not null" json:"name"`
	Code   string `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Season string `gorm:"size:20" json:"season"`
	Active bool   `gorm:"default:true" json:"active"`
}

// PlanZoneAssignment is a plan's baseline zone entitlement for one venue:
// absent any override, holders of the plan are ticketed against ZoneCode.
type PlanZoneAssignment struct {
	DTO
	SubscriptionPlanId uint   `gorm:"not null;index:idx_plan_venue,unique,priority:1" json:"subscriptionPlanId"`
	VenueId            uint   `gorm:"not null;index:idx_plan_venue,priority:2" json:"venueId"`
	ZoneCode           string `gorm:"size:30;not null" json:"zoneCode"`

	SubscriptionPlan SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanId" json:"-"`
	Venue            Venue            `gorm:"foreignKey:VenueId" json:"-"`
}

type CreatePlanInput struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"required"`
	Season string `json:"season" validate:"omitempty"`
}

type EditPlanInput struct {
	Name   string `json:"name" validate:"omitempty"`
	Season string `json:"season" validate:"omitempty"`
	Active *bool  `json:"active" validate:"omitempty"`
}

type AssignPlanZoneInput struct {
	VenueId  uint   `json:"venueId" validate:"required,gt=0"`
	ZoneCode string `json:"zoneCode" validate:"required"`
}
