package rules

import (
	"strings"

	"importflow/internal/dossier"
	"importflow/internal/stage"
)

// Action identifies one command of the workflow surface.
type Action string

const (
	ActionSendToQF       Action = "send-to-qf"
	ActionApproveQF      Action = "approve-qf"
	ActionObserve        Action = "observe"
	ActionScheduleEntry  Action = "schedule-entry"
	ActionRecordReceipt  Action = "record-receipt"
	ActionFinalRelease   Action = "final-release"
	ActionToggleDocument Action = "toggle-document"
	ActionAddComment     Action = "add-comment"
	ActionExport         Action = "export"
)

type grant struct {
	role   dossier.Role
	stage  stage.Stage
	action Action
}

// The (role, stage) → action table. Export and AddComment are universal and
// handled before the table; ToggleDocument is gated by document ownership
// plus a non-terminal stage.
var grants = []grant{
	{dossier.RoleCOMEX, stage.COMEXReview, ActionSendToQF},
	{dossier.RoleQF, stage.QFReview, ActionApproveQF},
	{dossier.RoleQF, stage.QFReview, ActionObserve},
	{dossier.RoleOperations, stage.EntryScheduling, ActionScheduleEntry},
	{dossier.RoleQF, stage.ArrivalReceiving, ActionFinalRelease},
	{dossier.RoleOperations, stage.ArrivalReceiving, ActionRecordReceipt},
}

// Allowed reports whether the acting role may perform the action at the
// given stage. Document ownership for ActionToggleDocument is checked
// separately via CanEditDocument.
func Allowed(role dossier.Role, at stage.Stage, action Action) bool {
	switch action {
	case ActionExport, ActionAddComment:
		return true
	case ActionToggleDocument:
		return !at.Terminal()
	}
	for _, g := range grants {
		if g.role == role && g.stage == at && g.action == action {
			return true
		}
	}
	return false
}

// Permitted returns the stage-specific actions available to a role, in
// table order. Universal actions are not listed.
func Permitted(role dossier.Role, at stage.Stage) []Action {
	var actions []Action
	for _, g := range grants {
		if g.role == role && g.stage == at {
			actions = append(actions, g.action)
		}
	}
	return actions
}

// ParseAction converts free-form input into a known action.
func ParseAction(value string) (Action, bool) {
	normalized := Action(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case ActionSendToQF, ActionApproveQF, ActionObserve, ActionScheduleEntry,
		ActionRecordReceipt, ActionFinalRelease, ActionToggleDocument,
		ActionAddComment, ActionExport:
		return normalized, true
	}
	return "", false
}
