package engine

// TemplateCatalog is one immutable generation of the ticket-template
// index, keyed by template type. Inactive templates are dropped at build
// time; within a type the source's creation order is preserved so the
// selector's fallback scan is deterministic. Duplicate active names are
// rejected at the write boundary, but the catalog keeps whatever it is
// handed and lets the selector's tie-break settle it.
type TemplateCatalog struct {
	byType map[TemplateType][]TicketTemplate
}

func BuildTemplateCatalog(templates []TicketTemplate) *TemplateCatalog {
	cat := &TemplateCatalog{byType: make(map[TemplateType][]TicketTemplate)}
	for _, tpl := range templates {
		if !tpl.Active {
			continue
		}
		cat.byType[tpl.Type] = append(cat.byType[tpl.Type], tpl)
	}
	return cat
}

// Candidates returns the active templates of the given type in creation
// order. The returned slice is shared with the catalog and must be
// treated as read-only.
func (c *TemplateCatalog) Candidates(t TemplateType) []TicketTemplate {
	return c.byType[t]
}

func (c *TemplateCatalog) Len() int {
	total := 0
	for _, tpls := range c.byType {
		total += len(tpls)
	}
	return total
}
