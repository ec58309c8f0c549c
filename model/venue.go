package model

type Venue struct {
	DTO
	Name    string      `gorm:"size:100;not null" json:"name"`
	Slug    string      `gorm:"size:120;uniqueIndex" json:"slug"`
	City    string      `gorm:"size:100" json:"city"`
	Address string      `json:"address"`
	Active  bool        `gorm:"default:true" json:"active"`
	Zones   []VenueZone `gorm:"foreignKey:VenueId" json:"zones,omitempty"`
}

// VenueZone is one entry of a venue's zone catalog. Code is the zone
// identifier overrides and baseline assignments point at.
type VenueZone struct {
	DTO
	VenueId  uint   `gorm:"not null;index:idx_venue_zone_code,unique,priority:1" json:"venueId"`
	Code     string `gorm:"size:30;not null;index:idx_venue_zone_code,unique,priority:2" json:"code"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Capacity int    `gorm:"not null;default:0" json:"capacity"`

	Venue Venue `gorm:"foreignKey:VenueId" json:"-"`
}

type CreateVenueInput struct {
	Name    string                `json:"name" validate:"required"`
	City    string                `json:"city" validate:"omitempty"`
	Address string                `json:"address" validate:"omitempty"`
	Zones   []CreateVenueZoneItem `json:"zones" validate:"omitempty,dive"`
}

type CreateVenueZoneItem struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"omitempty,gte=0"`
}

type EditVenueInput struct {
	Name    string `json:"name" validate:"omitempty"`
	City    string `json:"city" validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`
	Active  *bool  `json:"active" validate:"omitempty"`
}
