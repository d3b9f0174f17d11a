package app

import "strings"

// LayerOverlay is a block drawn over the base view starting at Row. Each
// overlay line replaces the base line it lands on.
type LayerOverlay struct {
	Row   int
	Block string
}

type LayerComposer interface {
	Compose(base string, overlays []LayerOverlay) string
}

func WithLayerComposer(composer LayerComposer) ModelOption {
	return func(m *Model) {
		if m == nil || composer == nil {
			return
		}
		m.layerComposer = composer
	}
}

type textLayerComposer struct{}

func NewTextLayerComposer() LayerComposer {
	return textLayerComposer{}
}

func (textLayerComposer) Compose(base string, overlays []LayerOverlay) string {
	if base == "" || len(overlays) == 0 {
		return base
	}
	lines := strings.Split(base, "\n")
	for _, overlay := range overlays {
		if overlay.Row < 0 || overlay.Block == "" {
			continue
		}
		for i, line := range strings.Split(overlay.Block, "\n") {
			target := overlay.Row + i
			if target >= len(lines) {
				break
			}
			lines[target] = line
		}
	}
	return strings.Join(lines, "\n")
}
