package model

import (
	"time"

	"club_ticketing/engine"
)

const (
	TicketIssued    = "ISSUED"
	TicketUsed      = "USED"
	TicketCancelled = "CANCELLED"
)

// IssuedTicket records one issuance: the effective zone the holder was
// ticketed against and the rendered artifact handed to the output stage.
type IssuedTicket struct {
	DTO
	TicketCode         string                `gorm:"size:40;uniqueIndex;not null" json:"ticketCode"`
	EventId            uint                  `gorm:"not null" json:"eventId"`
	SubscriptionPlanId *uint                 `gorm:"default:null" json:"subscriptionPlanId"`
	TemplateId         uint                  `gorm:"not null" json:"templateId"`
	EffectiveZone      string                `gorm:"size:30;not null" json:"effectiveZone"`
	Format             engine.TemplateFormat `gorm:"size:10;not null" json:"format"`
	Orientation        engine.Orientation    `gorm:"size:10;not null" json:"orientation"`
	RenderedContent    string                `gorm:"type:text" json:"-"`
	HolderName         string                `gorm:"size:100" json:"holderName"`
	HolderEmail        string                `gorm:"size:150" json:"holderEmail"`
	Status             string                `gorm:"size:20;not null;default:'ISSUED'" json:"status"`
	IssuedAt           time.Time             `json:"issuedAt"`
	UsedAt             *time.Time            `json:"usedAt,omitempty"`
	CancelledAt        *time.Time            `json:"cancelledAt,omitempty"`
	CreatedBy          uint                  `json:"createdBy"`

	Event            Event            `gorm:"foreignKey:EventId" json:"-"`
	SubscriptionPlan SubscriptionPlan `gorm:"foreignKey:SubscriptionPlanId;constraint:OnDelete:SET NULL" json:"-"`
	Template         TicketTemplate   `gorm:"foreignKey:TemplateId" json:"-"`
}

type IssueTicketInput struct {
	SubscriptionPlanId   *uint          `json:"subscriptionPlanId" validate:"omitempty,gt=0"`
	EventId              uint           `json:"eventId" validate:"required,gt=0"`
	OriginalZoneId       string         `json:"originalZoneId" validate:"omitempty"`
	TemplateType         string         `json:"templateType" validate:"required,oneof=TICKET SUBSCRIPTION INVITATION PASS RECEIPT"`
	PreferredFormat      string         `json:"preferredFormat" validate:"omitempty,oneof=PDF HTML PNG THERMAL"`
	PreferredOrientation string         `json:"preferredOrientation" validate:"omitempty,oneof=PORTRAIT LANDSCAPE"`
	HolderName           string         `json:"holderName" validate:"omitempty"`
	HolderEmail          string         `json:"holderEmail" validate:"omitempty,email"`
	Metadata             map[string]any `json:"metadata" validate:"omitempty"`
}

type FilterTicketInput struct {
	Pagination
	EventId   uint       `json:"eventId" validate:"omitempty,gt=0"`
	Status    string     `json:"status" validate:"omitempty,oneof=ISSUED USED CANCELLED"`
	StartDate *time.Time `json:"startDate" validate:"omitempty"`
	EndDate   *time.Time `json:"endDate" validate:"omitempty"`
}
