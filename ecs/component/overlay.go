package component

type OverlayRole int

const (
	OverlayScore OverlayRole = iota
	OverlayLevel
)

// TextOverlay is an on-screen label. Text is replaced wholesale whenever the
// value it shows changes.
type TextOverlay struct {
	Role  OverlayRole
	Text  string
	X     float64
	Y     float64
	Align string
}

var TextOverlayComponent = NewComponent[TextOverlay]()
