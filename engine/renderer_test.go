package engine

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("substitutes every placeholder occurrence", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Orientation: OrientationPortrait, Content: "Seat {{zone}} for {{name}}"}

		directive, err := Render(tpl, map[string]any{"zone": "Z-B", "name": "A. Ben Ali"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != "Seat Z-B for A. Ben Ali" {
			t.Fatalf("unexpected content: %q", directive.Content)
		}
		if directive.Format != FormatPDF || directive.Orientation != OrientationPortrait {
			t.Fatalf("directive must carry the template's format and orientation, got %+v", directive)
		}
	})

	t.Run("missing field fails even when others are present", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Content: "{{zone}} / {{gate}} / {{name}}"}

		_, err := Render(tpl, map[string]any{"zone": "Z-B", "name": "A. Ben Ali"})
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
		if missing.Field != "gate" {
			t.Fatalf("expected missing field gate, got %s", missing.Field)
		}
	})

	t.Run("rendering is byte-identical across calls", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Content: "{{who}} -> {{tags}} -> {{extra}}"}
		metadata := map[string]any{
			"who":   "member",
			"tags":  []any{"vip", "tribune", 12},
			"extra": map[string]any{"b": 2, "a": 1, "c": "x"},
		}

		first, err := Render(tpl, metadata)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := Render(tpl, metadata)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if again.Content != first.Content {
				t.Fatalf("expected identical output, got %q vs %q", first.Content, again.Content)
			}
		}
	})

	t.Run("sequences join with commas and maps sort by key", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Content: "{{tags}} | {{attrs}}"}

		directive, err := Render(tpl, map[string]any{
			"tags":  []any{"nord", "sud"},
			"attrs": map[string]any{"zone": "Z-B", "gate": "G4"},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != "nord, sud | gate=G4, zone=Z-B" {
			t.Fatalf("unexpected canonical form: %q", directive.Content)
		}
	})

	t.Run("HTML format escapes the five reserved characters", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatHTML, Content: "<p>{{name}}</p>"}

		directive, err := Render(tpl, map[string]any{"name": `<b>"A" & 'B'</b>`})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != "<p>&lt;b&gt;&#34;A&#34; &amp; &#39;B&#39;&lt;/b&gt;</p>" {
			t.Fatalf("unexpected escaped content: %q", directive.Content)
		}
	})

	t.Run("non-HTML formats pass values through unescaped", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatThermal, Content: "{{line}}"}

		directive, err := Render(tpl, map[string]any{"line": "<CUT> & <FEED>"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != "<CUT> & <FEED>" {
			t.Fatalf("expected raw pass-through, got %q", directive.Content)
		}
	})

	t.Run("numbers and booleans get stable string forms", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Content: "{{seats}} {{price}} {{vip}}"}

		directive, err := Render(tpl, map[string]any{"seats": 2, "price": 35.5, "vip": true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != "2 35.5 true" {
			t.Fatalf("unexpected content: %q", directive.Content)
		}
	})

	t.Run("content without placeholders renders untouched", func(t *testing.T) {
		tpl := TicketTemplate{Format: FormatPDF, Content: "Entrée générale - Stade Municipal"}

		directive, err := Render(tpl, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if directive.Content != tpl.Content {
			t.Fatalf("expected content unchanged, got %q", directive.Content)
		}
	})
}
