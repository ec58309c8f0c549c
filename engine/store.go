package engine

import (
	"context"
	"sync/atomic"
)

// Source lists the authoritative override and template records. It is the
// persistence collaborator: the store owns nothing, it only projects.
type Source interface {
	ListZoneMappingOverrides(ctx context.Context) ([]ZoneMappingOverride, error)
	ListTicketTemplates(ctx context.Context) ([]TicketTemplate, error)
}

// Store holds the current generation of the override index and template
// catalog behind atomic pointers. Readers always see one complete
// generation; the pointer swap on rebuild is the single point of total
// ordering among generations.
type Store struct {
	source   Source
	resolver *ZoneResolver

	index   atomic.Pointer[OverrideIndex]
	catalog atomic.Pointer[TemplateCatalog]
}

func NewStore(source Source, zones ZoneCatalog) *Store {
	s := &Store{
		source:   source,
		resolver: NewZoneResolver(zones),
	}
	s.index.Store(BuildOverrideIndex(nil))
	s.catalog.Store(BuildTemplateCatalog(nil))
	return s
}

// RebuildOverrides projects a fresh override index and swaps it in.
// In-flight readers keep the generation they already hold.
func (s *Store) RebuildOverrides(ctx context.Context) error {
	overrides, err := s.source.ListZoneMappingOverrides(ctx)
	if err != nil {
		return err
	}
	s.index.Store(BuildOverrideIndex(overrides))
	return nil
}

// RebuildTemplates projects a fresh template catalog and swaps it in.
func (s *Store) RebuildTemplates(ctx context.Context) error {
	templates, err := s.source.ListTicketTemplates(ctx)
	if err != nil {
		return err
	}
	s.catalog.Store(BuildTemplateCatalog(templates))
	return nil
}

// Rebuild refreshes both generations.
func (s *Store) Rebuild(ctx context.Context) error {
	if err := s.RebuildOverrides(ctx); err != nil {
		return err
	}
	return s.RebuildTemplates(ctx)
}

func (s *Store) OverrideIndex() *OverrideIndex {
	return s.index.Load()
}

func (s *Store) TemplateCatalog() *TemplateCatalog {
	return s.catalog.Load()
}

// ResolveZone runs only the zone resolution step over the current
// override generation. Callers that stamp the effective zone into render
// metadata use this before Issue.
func (s *Store) ResolveZone(ctx context.Context, planID, eventID, baselineZoneID string) (string, error) {
	return s.resolver.Resolve(ctx, s.OverrideIndex(), planID, eventID, baselineZoneID)
}

type IssuanceInput struct {
	SubscriptionPlanID   string
	EventID              string
	BaselineZoneID       string
	TemplateType         TemplateType
	PreferredFormat      *TemplateFormat
	PreferredOrientation *Orientation
	Metadata             map[string]any
}

type IssuanceResult struct {
	EffectiveZoneID string
	Template        TicketTemplate
	Directive       RenderDirective
}

// Issue runs the full pipeline over the current generations: resolve the
// effective zone, pick a template, render the artifact. It performs no
// writes and no retries; every failure is a typed error for the caller.
func (s *Store) Issue(ctx context.Context, in IssuanceInput) (IssuanceResult, error) {
	effectiveZone, err := s.resolver.Resolve(ctx, s.OverrideIndex(), in.SubscriptionPlanID, in.EventID, in.BaselineZoneID)
	if err != nil {
		return IssuanceResult{}, err
	}

	tpl, err := SelectTemplate(s.TemplateCatalog(), in.TemplateType, in.PreferredFormat, in.PreferredOrientation)
	if err != nil {
		return IssuanceResult{}, err
	}

	directive, err := Render(tpl, in.Metadata)
	if err != nil {
		return IssuanceResult{}, err
	}

	return IssuanceResult{
		EffectiveZoneID: effectiveZone,
		Template:        tpl,
		Directive:       directive,
	}, nil
}
