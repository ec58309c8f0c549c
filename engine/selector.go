package engine

// formatFallback is the fixed degradation order tried when the preferred
// format has no active candidate: PDF is the archival default, HTML the
// cheapest on-screen fallback, THERMAL serves kiosk printers and PNG is
// the last-resort raster.
var formatFallback = []TemplateFormat{FormatPDF, FormatHTML, FormatThermal, FormatPNG}

// SelectTemplate picks the best active template for the issuance context.
// It is a pure function of the catalog snapshot and its inputs: same
// generation, same arguments, same result.
func SelectTemplate(cat *TemplateCatalog, t TemplateType, preferredFormat *TemplateFormat, preferredOrientation *Orientation) (TicketTemplate, error) {
	candidates := cat.Candidates(t)
	if len(candidates) == 0 {
		return TicketTemplate{}, ErrNoTemplate
	}

	subset := candidates
	if preferredFormat != nil {
		subset = filterFormat(candidates, *preferredFormat)
		if len(subset) == 0 {
			for _, format := range formatFallback {
				if format == *preferredFormat {
					continue
				}
				if sub := filterFormat(candidates, format); len(sub) > 0 {
					subset = sub
					break
				}
			}
		}
		if len(subset) == 0 {
			return TicketTemplate{}, ErrNoTemplate
		}
	}

	// Orientation is a preference, not a filter: with no exact match the
	// whole subset stays eligible.
	if preferredOrientation != nil {
		matched := make([]TicketTemplate, 0, len(subset))
		for _, tpl := range subset {
			if tpl.Orientation == *preferredOrientation {
				matched = append(matched, tpl)
			}
		}
		if len(matched) > 0 {
			subset = matched
		}
	}

	best := subset[0]
	for _, tpl := range subset[1:] {
		if newerTemplate(tpl, best) {
			best = tpl
		}
	}
	return best, nil
}

func filterFormat(templates []TicketTemplate, format TemplateFormat) []TicketTemplate {
	out := make([]TicketTemplate, 0, len(templates))
	for _, tpl := range templates {
		if tpl.Format == format {
			out = append(out, tpl)
		}
	}
	return out
}

func newerTemplate(a, b TicketTemplate) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}
