package engine

import (
	"fmt"
	"strings"
	"time"

	"importflow/internal/dossier"
	"importflow/internal/fault"
	"importflow/internal/receiving"
	"importflow/internal/rules"
	"importflow/internal/stage"
)

// Engine applies workflow transitions to dossiers. It is pure: every
// transition validates against an unmodified input and returns a fresh
// dossier, so a failure can never leave partial state behind. Persistence
// is the caller's responsibility.
type Engine struct {
	clock func() time.Time
}

// New constructs an engine. A nil clock uses the wall clock.
func New(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{clock: clock}
}

// Result is the outcome of a successful transition: the replacement
// dossier plus a user-facing message.
type Result struct {
	Dossier *dossier.Dossier
	Message string
}

func (e *Engine) now() time.Time {
	return e.clock().UTC()
}

func (e *Engine) authorize(d *dossier.Dossier, role dossier.Role, action rules.Action) error {
	at := d.Stage()
	if rules.Allowed(role, at, action) {
		return nil
	}
	return fault.Wrap(fault.Authorization, string(action),
		fmt.Sprintf("role %s may not perform this action at stage %q", role, at))
}

func (e *Engine) logEntry(actor, message string) dossier.HistoryEntry {
	return dossier.HistoryEntry{At: e.now(), Actor: actor, Message: message}
}

// advance moves a clone to the target stage, reassigns the pending role,
// and resets the stage clock.
func advance(next *dossier.Dossier, target stage.Stage, responsible dossier.Role, at time.Time) {
	if idx, ok := stage.IndexOf(target); ok {
		next.StageIndex = idx
	}
	next.Responsible = responsible
	next.StageEntry = at
}

// SendToQF advances a dossier from COMEX Review to QF Review once the
// document gate is satisfied.
func (e *Engine) SendToQF(d *dossier.Dossier, role dossier.Role) (Result, error) {
	if err := e.authorize(d, role, rules.ActionSendToQF); err != nil {
		return Result{}, err
	}
	if missing := rules.MissingFor(stage.QFReview, d); len(missing) > 0 {
		return Result{}, fault.Wrap(fault.Precondition, string(rules.ActionSendToQF),
			"missing documents for QF review: "+joinDocIDs(missing))
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(dossier.ActorSystem, "Sent to QF review"))
	advance(next, stage.QFReview, dossier.RoleQF, e.now())
	return Result{Dossier: next, Message: "Dossier sent to QF review"}, nil
}

// ApproveQF records the regulatory approval and hands the dossier to
// Operations for entry scheduling.
func (e *Engine) ApproveQF(d *dossier.Dossier, role dossier.Role) (Result, error) {
	if err := e.authorize(d, role, rules.ActionApproveQF); err != nil {
		return Result{}, err
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(string(role), "QF approves regulatory review"))
	advance(next, stage.EntryScheduling, dossier.RoleOperations, e.now())
	return Result{Dossier: next, Message: "Approved by QF"}, nil
}

// ObserveQF returns the dossier to COMEX for adjustments. The stage index
// and the stage clock are left untouched: only the pending role changes.
func (e *Engine) ObserveQF(d *dossier.Dossier, role dossier.Role) (Result, error) {
	if err := e.authorize(d, role, rules.ActionObserve); err != nil {
		return Result{}, err
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(string(role), "QF requests adjustments or additional records"))
	next.Responsible = dossier.RoleCOMEX
	return Result{Dossier: next, Message: "Observed and returned to COMEX"}, nil
}

// ScheduleEntry books the warehouse entry and moves the dossier to
// Arrival & Receiving.
func (e *Engine) ScheduleEntry(d *dossier.Dossier, role dossier.Role) (Result, error) {
	if err := e.authorize(d, role, rules.ActionScheduleEntry); err != nil {
		return Result{}, err
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(string(role), "Operations schedules warehouse entry"))
	advance(next, stage.ArrivalReceiving, dossier.RoleOperations, e.now())
	return Result{Dossier: next, Message: "Warehouse entry scheduled"}, nil
}

// RecordReceipt validates and appends a receiving record. The stage and
// stage clock do not change.
func (e *Engine) RecordReceipt(d *dossier.Dossier, role dossier.Role, candidate receiving.Candidate) (Result, error) {
	if err := e.authorize(d, role, rules.ActionRecordReceipt); err != nil {
		return Result{}, err
	}
	record, err := receiving.Validate(candidate, e.now())
	if err != nil {
		return Result{}, err
	}

	next := d.Clone()
	next.Receiving = append(next.Receiving, record)
	next.History = next.History.Prepend(e.logEntry(string(role), "Receipt recorded: lot "+record.Lot))
	return Result{Dossier: next, Message: "Receipt recorded for lot " + record.Lot}, nil
}

// FinalRelease closes the dossier after document control, provided at
// least one receiving record exists.
func (e *Engine) FinalRelease(d *dossier.Dossier, role dossier.Role) (Result, error) {
	if err := e.authorize(d, role, rules.ActionFinalRelease); err != nil {
		return Result{}, err
	}
	if len(d.Receiving) == 0 {
		return Result{}, fault.Wrap(fault.Precondition, string(rules.ActionFinalRelease),
			"at least one receiving record is required before release")
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(string(role), "QF releases lots after document control"))
	advance(next, stage.Closed, dossier.RoleNone, e.now())
	return Result{Dossier: next, Message: "Dossier closed"}, nil
}

// ToggleDocument cycles a checklist document through pending → uploaded →
// approved. Only the document's responsible role may toggle it, and closed
// dossiers are immutable. Toggling leaves no history entry; the status is
// visible in the checklist itself.
func (e *Engine) ToggleDocument(d *dossier.Dossier, role dossier.Role, id dossier.DocID) (Result, error) {
	if err := e.authorize(d, role, rules.ActionToggleDocument); err != nil {
		return Result{}, err
	}
	spec, ok := dossier.DocByID(id)
	if !ok {
		return Result{}, fault.Wrap(fault.Validation, string(rules.ActionToggleDocument),
			fmt.Sprintf("unknown document %q", id))
	}
	if !rules.CanEditDocument(role, id) {
		return Result{}, fault.Wrap(fault.Authorization, string(rules.ActionToggleDocument),
			fmt.Sprintf("document %s is owned by %s", id, spec.Owner))
	}

	next := d.Clone()
	status := next.DocumentStatus(id).Next()
	if next.Documents == nil {
		next.Documents = make(map[dossier.DocID]dossier.DocStatus, 1)
	}
	next.Documents[id] = status
	return Result{Dossier: next, Message: fmt.Sprintf("%s is now %s", spec.Name, status)}, nil
}

// AddComment prepends a free-text note to the history. Any role may comment
// at any stage; nothing else about the dossier changes.
func (e *Engine) AddComment(d *dossier.Dossier, role dossier.Role, text string) (Result, error) {
	if err := e.authorize(d, role, rules.ActionAddComment); err != nil {
		return Result{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fault.Wrap(fault.Validation, string(rules.ActionAddComment), "comment text is empty")
	}

	next := d.Clone()
	next.History = next.History.Prepend(e.logEntry(dossier.ActorComment, "Note: "+text))
	return Result{Dossier: next, Message: "Comment added"}, nil
}

// NewPreAlert builds a fresh dossier at the initial stage, pending with
// COMEX and budgeted with the given allowance.
func (e *Engine) NewPreAlert(id string, allowanceHours int) *dossier.Dossier {
	now := e.now()
	return &dossier.Dossier{
		ID:             id,
		Supplier:       "New Supplier",
		Warehouse:      "—",
		TransportMode:  "TBD",
		Incoterm:       "—",
		Forwarder:      "—",
		ETA:            now.Add(15 * 24 * time.Hour),
		StageIndex:     0,
		Responsible:    dossier.RoleCOMEX,
		AllowanceHours: allowanceHours,
		StageEntry:     now,
		Products:       nil,
		Documents:      map[dossier.DocID]dossier.DocStatus{},
		Receiving:      nil,
		History: dossier.History{
			{At: now, Actor: string(dossier.RoleCOMEX), Message: "Pre-Alert created"},
		},
	}
}

func joinDocIDs(ids []dossier.DocID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
