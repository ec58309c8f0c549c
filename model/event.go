package model

import "time"

const (
	EventScheduled = "SCHEDULED"
	EventFinished  = "FINISHED"
	EventCancelled = "CANCELLED"
)

type Event struct {
	DTO
	Name      string    `gorm:"size:150;not null" json:"name"`
	Slug      string    `gorm:"size:170;uniqueIndex" json:"slug"`
	VenueId   uint      `gorm:"not null" json:"venueId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	Status    string    `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`

	Venue Venue `gorm:"foreignKey:VenueId" json:"-"`
}

type CreateEventInput struct {
	Name      string    `json:"name" validate:"required"`
	VenueId   uint      `json:"venueId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

type EditEventInput struct {
	Name      string     `json:"name" validate:"omitempty"`
	VenueId   *uint      `json:"venueId" validate:"omitempty,gt=0"`
	StartTime *time.Time `json:"startTime" validate:"omitempty"`
	Status    string     `json:"status" validate:"omitempty,oneof=SCHEDULED FINISHED CANCELLED"`
}
