// internal/pretty/defaults_snapshot_test.go
package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.SepGlyph == "" {
		t.Fatal("separator glyph must be non-empty")
	}
	// Spot checks of the external look only.
	if d.SepGlyph != ":" || d.MaxExpr != 60 || !d.ShowEvals {
		t.Fatal("DefaultOptions visual defaults changed")
	}
}
