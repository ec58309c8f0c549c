package engine

import (
	"errors"
	"testing"
	"time"
)

func fmtPtr(f TemplateFormat) *TemplateFormat { return &f }
func oriPtr(o Orientation) *Orientation       { return &o }

func TestTemplateCatalog(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("inactive templates are excluded", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Name: "retired", Active: false, UpdatedAt: now},
			{ID: "t-2", Type: TypeTicket, Format: FormatPDF, Name: "current", Active: true, UpdatedAt: now},
		})

		candidates := cat.Candidates(TypeTicket)
		if len(candidates) != 1 || candidates[0].ID != "t-2" {
			t.Fatalf("expected only the active template, got %+v", candidates)
		}
	})

	t.Run("creation order is preserved within a type", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypePass, Format: FormatPDF, Active: true},
			{ID: "t-2", Type: TypePass, Format: FormatHTML, Active: true},
			{ID: "t-3", Type: TypePass, Format: FormatPDF, Active: true},
		})

		candidates := cat.Candidates(TypePass)
		for i, want := range []string{"t-1", "t-2", "t-3"} {
			if candidates[i].ID != want {
				t.Fatalf("expected %s at position %d, got %s", want, i, candidates[i].ID)
			}
		}
	})
}

func TestSelectTemplate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no candidates for the type fails", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeReceipt, Format: FormatPDF, Active: true, UpdatedAt: now},
		})

		_, err := SelectTemplate(cat, TypeTicket, nil, nil)
		if !errors.Is(err, ErrNoTemplate) {
			t.Fatalf("expected ErrNoTemplate, got %v", err)
		}
	})

	t.Run("only inactive candidates fails", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: false, UpdatedAt: now},
		})

		_, err := SelectTemplate(cat, TypeTicket, nil, nil)
		if !errors.Is(err, ErrNoTemplate) {
			t.Fatalf("expected ErrNoTemplate, got %v", err)
		}
	})

	t.Run("preferred format wins when available", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now},
			{ID: "t-2", Type: TypeTicket, Format: FormatHTML, Active: true, UpdatedAt: now.Add(time.Hour)},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, fmtPtr(FormatPDF), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.ID != "t-1" {
			t.Fatalf("expected the PDF template, got %s", tpl.ID)
		}
	})

	t.Run("missing preferred format degrades to HTML", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatHTML, Active: true, UpdatedAt: now},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, fmtPtr(FormatPDF), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.Format != FormatHTML {
			t.Fatalf("expected fallback to HTML, got %s", tpl.Format)
		}
	})

	t.Run("degradation order starts at PDF regardless of the preference tried", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-default", Type: TypeTicket, Format: FormatPDF, Name: "default", Active: true, UpdatedAt: now},
			{ID: "t-fallback", Type: TypeTicket, Format: FormatHTML, Name: "fallback", Active: true, UpdatedAt: now},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, fmtPtr(FormatThermal), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.ID != "t-default" {
			t.Fatalf("expected the PDF template first in degradation order, got %s", tpl.ID)
		}
	})

	t.Run("orientation prefers exact match", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Orientation: OrientationPortrait, Active: true, UpdatedAt: now.Add(time.Hour)},
			{ID: "t-2", Type: TypeTicket, Format: FormatPDF, Orientation: OrientationLandscape, Active: true, UpdatedAt: now},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, nil, oriPtr(OrientationLandscape))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.ID != "t-2" {
			t.Fatalf("expected the landscape template, got %s", tpl.ID)
		}
	})

	t.Run("orientation with no match keeps all candidates", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Orientation: OrientationPortrait, Active: true, UpdatedAt: now},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, nil, oriPtr(OrientationLandscape))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.ID != "t-1" {
			t.Fatalf("expected the portrait template to stay eligible, got %s", tpl.ID)
		}
	})

	t.Run("tie-break takes greatest updatedAt then greatest id", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now},
			{ID: "t-2", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now.Add(time.Hour)},
			{ID: "t-3", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now.Add(time.Hour)},
		})

		tpl, err := SelectTemplate(cat, TypeTicket, nil, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tpl.ID != "t-3" {
			t.Fatalf("expected t-3 (newest, greatest id), got %s", tpl.ID)
		}
	})

	t.Run("selection is deterministic for the same snapshot", func(t *testing.T) {
		cat := BuildTemplateCatalog([]TicketTemplate{
			{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now},
			{ID: "t-2", Type: TypeTicket, Format: FormatHTML, Active: true, UpdatedAt: now},
		})

		first, err := SelectTemplate(cat, TypeTicket, fmtPtr(FormatPNG), nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for i := 0; i < 5; i++ {
			again, err := SelectTemplate(cat, TypeTicket, fmtPtr(FormatPNG), nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if again.ID != first.ID {
				t.Fatalf("expected %s every time, got %s", first.ID, again.ID)
			}
		}
	})
}
