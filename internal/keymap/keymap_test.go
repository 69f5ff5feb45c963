//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 5},
		{"page context", "page", true, 5},
		{"palette context", "palette", true, 3},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}
			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestNoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestPaletteToggleIsGlobal(t *testing.T) {
	r := Default()
	if got := r.Resolve("ctrl+k"); got != ActionPalette {
		t.Errorf("Resolve(ctrl+k) = %q, want %q", got, ActionPalette)
	}
}

func TestJumpTarget(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"alt+1", "dashboard"},
		{"alt+2", "markets"},
		{"alt+3", "console"},
		{"alt+4", "networks"},
		{"alt+5", "log"},
		{"alt+6", "status"},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, ok := JumpTarget(r.Resolve(tt.key))
			if !ok || id != tt.want {
				t.Errorf("JumpTarget(Resolve(%q)) = %q, %v, want %q", tt.key, id, ok, tt.want)
			}
		})
	}

	if _, ok := JumpTarget(ActionQuit); ok {
		t.Error("JumpTarget(quit) should not resolve")
	}
}
