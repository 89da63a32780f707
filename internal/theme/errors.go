package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTheme is returned when activating a name that was never registered
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrNotInitialized is returned when the registry is used before Init
	ErrNotInitialized = errors.New("theme registry not initialized")

	// ErrAlreadyInitialized is returned by a second call to Init
	ErrAlreadyInitialized = errors.New("theme registry already initialized")

	// ErrNoFactory is the cause of a load failure when no ProviderFactory was configured
	ErrNoFactory = errors.New("no provider factory configured")

	// ErrNilProvider is the cause of a load failure when the factory returned nothing
	ErrNilProvider = errors.New("provider factory returned no provider")
)

// ProviderLoadError reports that the resources of a theme could not be opened.
// The active theme is left unchanged when it is returned.
type ProviderLoadError struct {
	Theme string
	Err   error
}

func (e *ProviderLoadError) Error() string {
	return fmt.Sprintf("failed to load resources for theme %q: %v", e.Theme, e.Err)
}

func (e *ProviderLoadError) Unwrap() error {
	return e.Err
}
