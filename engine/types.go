package engine

import (
	"fmt"
	"time"
)

type TemplateType string

const (
	TypeTicket       TemplateType = "TICKET"
	TypeSubscription TemplateType = "SUBSCRIPTION"
	TypeInvitation   TemplateType = "INVITATION"
	TypePass         TemplateType = "PASS"
	TypeReceipt      TemplateType = "RECEIPT"
)

func ParseTemplateType(s string) (TemplateType, error) {
	switch TemplateType(s) {
	case TypeTicket, TypeSubscription, TypeInvitation, TypePass, TypeReceipt:
		return TemplateType(s), nil
	}
	return "", fmt.Errorf("unknown template type %q", s)
}

type TemplateFormat string

const (
	FormatPDF     TemplateFormat = "PDF"
	FormatHTML    TemplateFormat = "HTML"
	FormatPNG     TemplateFormat = "PNG"
	FormatThermal TemplateFormat = "THERMAL"
)

func ParseTemplateFormat(s string) (TemplateFormat, error) {
	switch TemplateFormat(s) {
	case FormatPDF, FormatHTML, FormatPNG, FormatThermal:
		return TemplateFormat(s), nil
	}
	return "", fmt.Errorf("unknown template format %q", s)
}

type Orientation string

const (
	OrientationPortrait  Orientation = "PORTRAIT"
	OrientationLandscape Orientation = "LANDSCAPE"
)

func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case OrientationPortrait, OrientationLandscape:
		return Orientation(s), nil
	}
	return "", fmt.Errorf("unknown orientation %q", s)
}

// ZoneMappingOverride is a read-only projection of an override record.
// The authoritative row lives in the store; the index only ever sees
// snapshots handed over by a Source.
type ZoneMappingOverride struct {
	ID                 string
	SubscriptionPlanID string
	EventID            string
	OriginalZoneID     string
	OverrideZoneID     string
	Metadata           map[string]any
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TicketTemplate is a read-only projection of a template record.
type TicketTemplate struct {
	ID          string
	Type        TemplateType
	Format      TemplateFormat
	Orientation Orientation
	Name        string
	Content     string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
