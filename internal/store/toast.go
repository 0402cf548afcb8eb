package store

import (
	"time"

	"taskdeck/internal/model"
)

// ToastOptions tune a pushed notification. The zero value means dismissible
// with no auto-dismiss.
type ToastOptions struct {
	TimeoutMS      int
	NotDismissible bool
}

// PushToast appends a transient notification. A positive timeout schedules
// an automatic dismissal. Toasts are never persisted.
func (s *Store) PushToast(variant, message string, opts ToastOptions) *model.Toast {
	s.mu.Lock()

	switch variant {
	case model.ToastSuccess, model.ToastError, model.ToastWarning, model.ToastInfo:
	default:
		variant = model.ToastInfo
	}
	t := &model.Toast{
		ID:          s.newID(),
		Variant:     variant,
		Message:     message,
		Dismissible: !opts.NotDismissible,
		TimeoutMS:   opts.TimeoutMS,
	}
	s.state.Toasts = append(s.state.Toasts, t)
	s.mu.Unlock()

	if opts.TimeoutMS > 0 {
		time.AfterFunc(time.Duration(opts.TimeoutMS)*time.Millisecond, func() {
			s.DismissToast(t.ID)
		})
	}
	return t
}

// DismissToast removes a toast by id. Unknown ids are a no-op.
func (s *Store) DismissToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Toasts[:0]
	for _, t := range s.state.Toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.state.Toasts = kept
}

func (s *Store) ClearToasts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Toasts = []*model.Toast{}
}
