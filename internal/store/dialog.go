package store

import "taskdeck/internal/model"

// DialogConfig describes a confirm/prompt request to open.
type DialogConfig struct {
	Variant      string
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	HasInput     bool
	Input        string
	Action       model.DialogAction
}

// OpenDialog replaces any open dialog with the given request. Dialog state
// is transient and never persisted.
func (s *Store) OpenDialog(cfg DialogConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Dialog = model.Dialog{
		IsOpen:       true,
		Variant:      cfg.Variant,
		Title:        cfg.Title,
		Message:      cfg.Message,
		ConfirmLabel: cfg.ConfirmLabel,
		CancelLabel:  cfg.CancelLabel,
		HasInput:     cfg.HasInput,
		Input:        cfg.Input,
		Action:       cfg.Action,
	}
}

// SetDialogInput updates the prompt's text input and clears any previous
// validation error.
func (s *Store) SetDialogInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Dialog.IsOpen {
		return
	}
	s.state.Dialog.Input = input
	s.state.Dialog.Error = ""
}

// CloseDialog dismisses the dialog. Always safe, idempotent.
func (s *Store) CloseDialog() {
	s.mu.Lock()
	s.state.Dialog = model.Dialog{}
	s.mu.Unlock()
}

// ConfirmDialog dispatches the open dialog's action over the closed action
// table. On a validation failure the dialog stays open with the error
// recorded inline; on success it closes.
func (s *Store) ConfirmDialog() *Error {
	s.mu.Lock()
	if !s.state.Dialog.IsOpen {
		s.mu.Unlock()
		return errInvalidTarget("no dialog is open")
	}
	action := s.state.Dialog.Action
	input := s.state.Dialog.Input
	s.mu.Unlock()

	var err *Error
	switch action.Kind {
	case model.ActionWorkspaceCreate:
		_, err = s.CreateWorkspace(input)
	case model.ActionWorkspaceRename:
		err = s.RenameWorkspace(action.TargetID, input)
	case model.ActionWorkspaceDelete:
		err = s.DeleteWorkspace(action.TargetID)
	case model.ActionColumnDelete:
		err = s.DeleteColumn(action.TargetID)
	case model.ActionTaskDelete:
		err = s.DeleteTask(action.TargetID)
	case model.ActionFullReset:
		s.FullReset()
	default:
		err = errInvalidTarget("unhandled dialog action")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Dialog.Error = err.Message
		return err
	}
	s.state.Dialog = model.Dialog{}
	return nil
}
