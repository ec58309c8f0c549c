package engine

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// RenderDirective is the renderer's output: the fully substituted content
// plus the template's format and orientation, handed to an external
// format-specific rasterizer or printer. The engine never produces
// PDF/PNG bytes itself.
type RenderDirective struct {
	Format      TemplateFormat `json:"format"`
	Orientation Orientation    `json:"orientation"`
	Content     string         `json:"content"`
}

// Render substitutes the metadata map into the template content. Every
// placeholder must have a metadata key; the first one without a value
// fails the whole render with MissingFieldError. Values interpolated into
// HTML templates are escaped for the five reserved characters; other
// formats carry structured markup for an external renderer and pass
// through untouched.
func Render(tpl TicketTemplate, metadata map[string]any) (RenderDirective, error) {
	for _, match := range placeholderPattern.FindAllStringSubmatch(tpl.Content, -1) {
		if _, ok := metadata[match[1]]; !ok {
			return RenderDirective{}, &MissingFieldError{Field: match[1]}
		}
	}

	content := placeholderPattern.ReplaceAllStringFunc(tpl.Content, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		value := canonicalValue(metadata[name])
		if tpl.Format == FormatHTML {
			value = html.EscapeString(value)
		}
		return value
	})

	return RenderDirective{
		Format:      tpl.Format,
		Orientation: tpl.Orientation,
		Content:     content,
	}, nil
}

// canonicalValue projects a dynamically-typed metadata value onto a
// reproducible flat string: sequences are comma-joined, maps become
// key=value pairs sorted by key.
func canonicalValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = canonicalValue(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + canonicalValue(val[k])
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
