package session

import (
	"github.com/folio-dev/folio/internal/cursor"
	"github.com/folio-dev/folio/internal/motion"
	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/sections"
)

// Inbound message types.
const (
	TypePointer     = "pointer"
	TypeEnter       = "enter"
	TypeLeave       = "leave"
	TypeScroll      = "scroll"
	TypeLayout      = "layout"
	TypeExpand      = "expand"
	TypeMagnet      = "magnet"
	TypeMagnetLeave = "magnet_leave"
	TypeFrame       = "frame"
)

// Outbound message types not shared with inbound ones.
const (
	TypeNav      = "nav"
	TypeProjects = "projects"
	TypeError    = "error"
)

// Inbound is one event from the page. Fields are read according to Type.
type Inbound struct {
	Type           string            `json:"type"`
	X              float64           `json:"x"`
	Y              float64           `json:"y"`
	Variant        string            `json:"variant"`
	ScrollY        float64           `json:"scroll_y"`
	ViewportHeight float64           `json:"viewport_height"`
	Sections       []SectionGeometry `json:"sections"`
	Expanded       bool              `json:"expanded"`
	Bounds         *sections.Rect    `json:"bounds"`
	DT             float64           `json:"dt"`
}

// SectionGeometry is one measured section in a layout report.
type SectionGeometry struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Frame is one animation tick: the cursor frame plus the nav magnet offset.
type Frame struct {
	cursor.Frame
	NavOffset motion.Point `json:"nav_offset"`
}

// FrameMessage answers a frame event.
type FrameMessage struct {
	Type  string `json:"type"`
	Frame Frame  `json:"frame"`
}

// NavMessage reports a change in the derived navigation state.
type NavMessage struct {
	Type string `json:"type"`
	sections.State
}

// ProjectsMessage carries the resolved project list, sent once per session.
type ProjectsMessage struct {
	Type     string              `json:"type"`
	Projects []repos.DisplayItem `json:"projects"`
}

// ErrorMessage reports a rejected inbound event.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
