package model

import (
	"club_ticketing/engine"

	"gorm.io/datatypes"
)

type TicketTemplate struct {
	DTO
	PublicCode      string                `gorm:"size:40;uniqueIndex;not null" json:"publicCode"`
	Code            string                `gorm:"size:130;uniqueIndex" json:"code"`
	TemplateType    engine.TemplateType   `gorm:"size:20;not null;index:idx_template_type_name,unique,priority:1" json:"templateType"`
	TemplateFormat  engine.TemplateFormat `gorm:"size:10;not null" json:"templateFormat"`
	Orientation     engine.Orientation    `gorm:"size:10;not null;default:'PORTRAIT'" json:"orientation"`
	Name            string                `gorm:"size:100;not null;index:idx_template_type_name,unique,priority:2" json:"name"`
	Description     string                `json:"description"`
	TemplateContent string                `gorm:"type:text;not null" json:"templateContent"`
	IsActive        bool                  `gorm:"default:true" json:"isActive"`
	Metadata        datatypes.JSONMap     `json:"metadata,omitempty"`
}

type CreateTemplateInput struct {
	TemplateType    string         `json:"templateType" validate:"required,oneof=TICKET SUBSCRIPTION INVITATION PASS RECEIPT"`
	TemplateFormat  string         `json:"templateFormat" validate:"required,oneof=PDF HTML PNG THERMAL"`
	Orientation     string         `json:"orientation" validate:"required,oneof=PORTRAIT LANDSCAPE"`
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description" validate:"omitempty"`
	TemplateContent string         `json:"templateContent" validate:"required"`
	IsActive        *bool          `json:"isActive" validate:"omitempty"`
	Metadata        map[string]any `json:"metadata" validate:"omitempty"`
}

type EditTemplateInput struct {
	TemplateFormat  string         `json:"templateFormat" validate:"omitempty,oneof=PDF HTML PNG THERMAL"`
	Orientation     string         `json:"orientation" validate:"omitempty,oneof=PORTRAIT LANDSCAPE"`
	Name            string         `json:"name" validate:"omitempty"`
	Description     string         `json:"description" validate:"omitempty"`
	TemplateContent string         `json:"templateContent" validate:"omitempty"`
	IsActive        *bool          `json:"isActive" validate:"omitempty"`
	Metadata        map[string]any `json:"metadata" validate:"omitempty"`
}

type FilterTemplateInput struct {
	Pagination
	TemplateType string `json:"templateType" validate:"omitempty,oneof=TICKET SUBSCRIPTION INVITATION PASS RECEIPT"`
	IsActive     *bool  `json:"isActive" validate:"omitempty"`
}
