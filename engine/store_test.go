package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSource struct {
	overrides []ZoneMappingOverride
	templates []TicketTemplate
	err       error
}

func (f *fakeSource) ListZoneMappingOverrides(_ context.Context) ([]ZoneMappingOverride, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.overrides, nil
}

func (f *fakeSource) ListTicketTemplates(_ context.Context) ([]TicketTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates, nil
}

func TestStore_Rebuild(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("readers keep their generation across a swap", func(t *testing.T) {
		source := &fakeSource{
			overrides: []ZoneMappingOverride{
				{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: now},
			},
		}
		store := NewStore(source, &fakeZoneCatalog{})
		if err := store.Rebuild(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		held := store.OverrideIndex()

		source.overrides = nil
		if err := store.RebuildOverrides(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, ok := held.Lookup("P1", "E1", "Z-A"); !ok {
			t.Fatalf("held generation must stay complete after the swap")
		}
		if _, ok := store.OverrideIndex().Lookup("P1", "E1", "Z-A"); ok {
			t.Fatalf("new generation must reflect the emptied source")
		}
	})

	t.Run("source failure leaves the current generation serving", func(t *testing.T) {
		source := &fakeSource{
			templates: []TicketTemplate{
				{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: true, UpdatedAt: now},
			},
		}
		store := NewStore(source, &fakeZoneCatalog{})
		if err := store.Rebuild(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		source.err = errors.New("db gone")
		if err := store.RebuildTemplates(context.Background()); err == nil {
			t.Fatalf("expected rebuild error")
		}
		if store.TemplateCatalog().Len() != 1 {
			t.Fatalf("failed rebuild must not clobber the serving catalog")
		}
	})
}

func TestStore_Issue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	newStore := func(t *testing.T, source *fakeSource, zones *fakeZoneCatalog) *Store {
		t.Helper()
		store := NewStore(source, zones)
		if err := store.Rebuild(context.Background()); err != nil {
			t.Fatalf("rebuild: %v", err)
		}
		return store
	}

	t.Run("override plus template plus render end to end", func(t *testing.T) {
		store := newStore(t,
			&fakeSource{
				overrides: []ZoneMappingOverride{
					{ID: "ov-1", SubscriptionPlanID: "P1", EventID: "E1", OriginalZoneID: "Z-A", OverrideZoneID: "Z-B", UpdatedAt: now},
				},
				templates: []TicketTemplate{
					{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Orientation: OrientationPortrait, Name: "default", Active: true, Content: "Seat {{zone}} for {{name}}", UpdatedAt: now},
				},
			},
			&fakeZoneCatalog{zones: map[string][]string{"E1": {"Z-A", "Z-B"}}},
		)

		result, err := store.Issue(context.Background(), IssuanceInput{
			SubscriptionPlanID: "P1",
			EventID:            "E1",
			BaselineZoneID:     "Z-A",
			TemplateType:       TypeTicket,
			Metadata:           map[string]any{"zone": "Z-B", "name": "A. Ben Ali"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.EffectiveZoneID != "Z-B" {
			t.Fatalf("expected effective zone Z-B, got %s", result.EffectiveZoneID)
		}
		if result.Directive.Content != "Seat Z-B for A. Ben Ali" {
			t.Fatalf("unexpected rendered content: %q", result.Directive.Content)
		}
	})

	t.Run("format degradation applies inside the pipeline", func(t *testing.T) {
		store := newStore(t,
			&fakeSource{
				templates: []TicketTemplate{
					{ID: "t-default", Type: TypeTicket, Format: FormatPDF, Name: "default", Active: true, Content: "ok", UpdatedAt: now},
					{ID: "t-fallback", Type: TypeTicket, Format: FormatHTML, Name: "fallback", Active: true, Content: "ok", UpdatedAt: now},
				},
			},
			&fakeZoneCatalog{zones: map[string][]string{"E1": {"Z-A"}}},
		)

		preferred := FormatThermal
		result, err := store.Issue(context.Background(), IssuanceInput{
			EventID:         "E1",
			BaselineZoneID:  "Z-A",
			TemplateType:    TypeTicket,
			PreferredFormat: &preferred,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Template.ID != "t-default" {
			t.Fatalf("expected the PDF template, got %s", result.Template.ID)
		}
		if result.EffectiveZoneID != "Z-A" {
			t.Fatalf("expected baseline zone without an override, got %s", result.EffectiveZoneID)
		}
	})

	t.Run("render failure surfaces without partial output", func(t *testing.T) {
		store := newStore(t,
			&fakeSource{
				templates: []TicketTemplate{
					{ID: "t-1", Type: TypeTicket, Format: FormatPDF, Active: true, Content: "{{zone}} {{gate}}", UpdatedAt: now},
				},
			},
			&fakeZoneCatalog{zones: map[string][]string{"E1": {"Z-A"}}},
		)

		_, err := store.Issue(context.Background(), IssuanceInput{
			EventID:        "E1",
			BaselineZoneID: "Z-A",
			TemplateType:   TypeTicket,
			Metadata:       map[string]any{"zone": "Z-A"},
		})
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
	})

	t.Run("no template for the type surfaces ErrNoTemplate", func(t *testing.T) {
		store := newStore(t,
			&fakeSource{},
			&fakeZoneCatalog{zones: map[string][]string{"E1": {"Z-A"}}},
		)

		_, err := store.Issue(context.Background(), IssuanceInput{
			EventID:        "E1",
			BaselineZoneID: "Z-A",
			TemplateType:   TypeInvitation,
		})
		if !errors.Is(err, ErrNoTemplate) {
			t.Fatalf("expected ErrNoTemplate, got %v", err)
		}
	})
}
