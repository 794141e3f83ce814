// Package wrappers implements wrappers around environments
package wrappers

import (
	"errors"

	log "github.com/sirupsen/logrus"

	env "github.com/samuelfneumann/zonelearn/environment"
)

// ErrNotInitialized is returned by a Helper that has no environment
// attached
var ErrNotInitialized = errors.New("environment not initialized")

// Helper forwards every call to a wrapped environment. Until Init is
// called, every call fails with ErrNotInitialized. Performed actions
// are logged at debug level, together with their annotation if the
// environment is an environment.Tagger.
type Helper struct {
	env    env.Environment
	logger log.FieldLogger
}

// NewHelper returns a new Helper with no environment attached. If
// logger is nil, the logrus standard logger is used.
func NewHelper(logger log.FieldLogger) *Helper {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Helper{logger: logger}
}

// Init attaches e to the Helper
func (h *Helper) Init(e env.Environment) {
	h.env = e
	h.logger.WithField("env", e).Info("Helper initialized")
}

// StateCount implements environment.Environment
func (h *Helper) StateCount() (int, error) {
	if h.env == nil {
		return 0, ErrNotInitialized
	}
	return h.env.StateCount()
}

// ActionCount implements environment.Environment
func (h *Helper) ActionCount() (int, error) {
	if h.env == nil {
		return 0, ErrNotInitialized
	}
	return h.env.ActionCount()
}

// ReadCurrentState implements environment.Environment
func (h *Helper) ReadCurrentState() (int, error) {
	if h.env == nil {
		return 0, ErrNotInitialized
	}
	return h.env.ReadCurrentState()
}

// CurrentStateVector implements environment.Environment. It returns
// nil if no environment is attached.
func (h *Helper) CurrentStateVector() []int {
	if h.env == nil {
		return nil
	}
	return h.env.CurrentStateVector()
}

// ApplicableActions implements environment.Environment
func (h *Helper) ApplicableActions(state int) ([]int, error) {
	if h.env == nil {
		return nil, ErrNotInitialized
	}
	return h.env.ApplicableActions(state)
}

// PerformAction implements environment.Environment
func (h *Helper) PerformAction(action int) error {
	if h.env == nil {
		return ErrNotInitialized
	}
	if err := h.env.PerformAction(action); err != nil {
		return err
	}
	fields := log.Fields{"action": action}
	if t, ok := h.env.(env.Tagger); ok {
		fields["tag"] = t.ActionTag(action)
	}
	h.logger.WithFields(fields).Debug("Performed action")
	return nil
}

// CompatibleStates implements environment.Environment
func (h *Helper) CompatibleStates(d env.Descriptor) ([]int, error) {
	if h.env == nil {
		return nil, ErrNotInitialized
	}
	return h.env.CompatibleStates(d)
}
