package service

import "SecretInk/internal/model"

// ToggleAction — результат переключения реакции.
type ToggleAction string

const (
	ActionAdded   ToggleAction = "added"
	ActionUpdated ToggleAction = "updated"
	ActionRemoved ToggleAction = "removed"
)

// decideToggle описывает автомат для пары (сообщение, fingerprint):
//
//	absent        + T  -> present(T)   added
//	present(T)    + T  -> absent       removed
//	present(T)    + T' -> present(T')  updated
//
// current == nil означает отсутствие реакции.
func decideToggle(current *model.ReactionType, requested model.ReactionType) ToggleAction {
	switch {
	case current == nil:
		return ActionAdded
	case *current == requested:
		return ActionRemoved
	default:
		return ActionUpdated
	}
}
