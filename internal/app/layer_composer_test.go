package app

import "testing"

func TestTextLayerComposerComposeOverlays(t *testing.T) {
	composer := NewTextLayerComposer()
	base := "line0\nline1\nline2\nline3"

	result := composer.Compose(base, []LayerOverlay{
		{Row: 1, Block: "A"},
		{Row: 2, Block: "B\nC"},
	})

	want := "line0\nA\nB\nC"
	if result != want {
		t.Fatalf("unexpected composed output:\nwant:\n%s\n\ngot:\n%s", want, result)
	}
}

func TestTextLayerComposerClipsOverlayAtBottom(t *testing.T) {
	composer := NewTextLayerComposer()
	result := composer.Compose("a\nb", []LayerOverlay{{Row: 1, Block: "X\nY\nZ"}, {Row: -1, Block: "skip"}})
	if result != "a\nX" {
		t.Fatalf("expected clipped overlay, got %q", result)
	}
}
