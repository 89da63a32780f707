package history

import (
	"context"
	"time"

	"github.com/shaharia-lab/reskin/internal/logger"
	"github.com/shaharia-lab/reskin/internal/theme"
)

const recordTimeout = 5 * time.Second

// Recorder is a theme listener writing every change to a Store.
// Write failures are logged; they never affect the activation.
type Recorder struct {
	store  *Store
	mode   theme.Mode
	logger logger.Logger
	now    func() time.Time
}

var _ theme.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder tagging transitions with mode
func NewRecorder(store *Store, mode theme.Mode, l logger.Logger) *Recorder {
	if l == nil {
		l = logger.Discard
	}
	return &Recorder{store: store, mode: mode, logger: l, now: time.Now}
}

// OnThemeChanged records the transition
func (r *Recorder) OnThemeChanged(oldTheme, newTheme *theme.Descriptor) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	t := &Transition{
		From: oldTheme.Key(),
		To:   newTheme.Key(),
		Mode: r.mode.String(),
		At:   r.now(),
	}
	if err := r.store.Record(ctx, t); err != nil {
		r.logger.Error("Failed to record theme change", map[string]interface{}{
			"from":          t.From,
			"to":            t.To,
			logger.ErrorKey: err,
		})
	}
}
