package theme

import (
	"github.com/google/uuid"
)

// Listener is notified after the active theme changed
type Listener interface {
	OnThemeChanged(oldTheme, newTheme *Descriptor)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(oldTheme, newTheme *Descriptor)

// OnThemeChanged calls f
func (f ListenerFunc) OnThemeChanged(oldTheme, newTheme *Descriptor) {
	f(oldTheme, newTheme)
}

// Handle identifies one listener registration
type Handle uuid.UUID

// NilHandle is returned when nothing was registered
var NilHandle = Handle(uuid.Nil)

// String implements fmt.Stringer
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

func newHandle() Handle {
	return Handle(uuid.New())
}
