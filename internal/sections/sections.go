// Package sections tracks which anchored content section of the page is in
// view and whether the floating navigation should be shown.
package sections

// Section is a named, anchorable region of the page.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Anchor returns the in-page link target for s.
func (s Section) Anchor() string { return "#" + s.ID }

// DefaultNav is the navigation order of the portfolio page.
var DefaultNav = []Section{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "projects", Label: "Projects"},
	{ID: "tech-stack", Label: "Skills"},
	{ID: "experience", Label: "Experience"},
	{ID: "contact", Label: "Contact"},
}

// Geometry is the vertical extent of a section in document coordinates.
type Geometry struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom returns Top+Height.
func (g Geometry) Bottom() float64 { return g.Top + g.Height }

// Layout maps section ids to their measured geometry.
type Layout map[string]Geometry

// Active returns the id of the last section, in declared order, whose top is
// at or above probe. Sections missing from layout are skipped. When no
// section qualifies the first declared section is returned.
func Active(nav []Section, layout Layout, probe float64) string {
	if len(nav) == 0 {
		return ""
	}
	active := nav[0].ID
	for _, s := range nav {
		g, ok := layout[s.ID]
		if !ok {
			continue
		}
		if probe >= g.Top {
			active = s.ID
		}
	}
	return active
}

// Probe returns the document-space y coordinate used to pick the active
// section: the vertical midpoint of the viewport.
func Probe(scrollY, viewportHeight float64) float64 {
	return scrollY + viewportHeight/2
}
