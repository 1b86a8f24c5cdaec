package motion

// DockEffect is the magnification applied to one dock item.
type DockEffect struct {
	Scale      float64 `json:"scale"`
	TranslateY float64 `json:"translate_y"`
}

var dockFalloff = []DockEffect{
	{Scale: 1.5, TranslateY: -20},
	{Scale: 1.25, TranslateY: -12},
	{Scale: 1.1, TranslateY: -5},
}

// Dock returns the magnification for item index given the hovered index.
// A negative hovered index means nothing is hovered.
func Dock(index, hovered int) DockEffect {
	if hovered < 0 {
		return DockEffect{Scale: 1}
	}
	d := index - hovered
	if d < 0 {
		d = -d
	}
	if d < len(dockFalloff) {
		return dockFalloff[d]
	}
	return DockEffect{Scale: 1}
}
