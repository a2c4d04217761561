package dossier

import (
	"time"

	"importflow/internal/stage"
)

// Product is one line item of the shipment.
type Product struct {
	SKU              string `json:"sku"`
	Description      string `json:"description"`
	Registration     string `json:"registration"`
	StorageCondition string `json:"storage_condition"`
}

// ReceivingRecord captures a physical receipt event. Records are immutable
// once accepted; corrections require a new record.
type ReceivingRecord struct {
	Lot           string    `json:"lot"`
	Expiry        string    `json:"expiry"` // year-month, e.g. "2025-12"
	Quantity      float64   `json:"quantity"`
	ColdChain     bool      `json:"cold_chain"`
	TemperatureOK bool      `json:"temperature_ok"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// HistoryEntry is one immutable line of the dossier audit log.
type HistoryEntry struct {
	At      time.Time `json:"at"`
	Actor   string    `json:"actor"`
	Message string    `json:"message"`
}

// History is the dossier log, ordered most-recent-first.
type History []HistoryEntry

// Prepend returns a new log with the entry at the front. The receiver is
// never mutated.
func (h History) Prepend(entry HistoryEntry) History {
	next := make(History, 0, len(h)+1)
	next = append(next, entry)
	next = append(next, h...)
	return next
}

// Oldest returns the earliest entry of the log.
func (h History) Oldest() (HistoryEntry, bool) {
	if len(h) == 0 {
		return HistoryEntry{}, false
	}
	return h[len(h)-1], true
}

// Dossier is the full case file of one tracked import shipment. It
// exclusively owns its documents, products, receiving records, and history;
// nothing is shared across dossiers.
type Dossier struct {
	ID             string              `json:"id"`
	Supplier       string              `json:"supplier"`
	Warehouse      string              `json:"warehouse"`
	TransportMode  string              `json:"transport_mode"`
	Incoterm       string              `json:"incoterm"`
	Forwarder      string              `json:"forwarder"`
	ETA            time.Time           `json:"eta"`
	StageIndex     int                 `json:"stage_index"`
	Responsible    Role                `json:"responsible"`
	AllowanceHours int                 `json:"allowance_hours"`
	StageEntry     time.Time           `json:"stage_entry"`
	Products       []Product           `json:"products"`
	Documents      map[DocID]DocStatus `json:"documents"`
	Receiving      []ReceivingRecord   `json:"receiving"`
	History        History             `json:"history"`
}

// Stage resolves the current stage from the stage index. An out-of-range
// index resolves to the initial stage; the engine never produces one.
func (d *Dossier) Stage() stage.Stage {
	if s, ok := stage.ByIndex(d.StageIndex); ok {
		return s
	}
	return stage.PreAlert
}

// DocumentStatus returns the status of a checklist document, defaulting to
// pending when the dossier has no entry for it.
func (d *Dossier) DocumentStatus(id DocID) DocStatus {
	if status, ok := d.Documents[id]; ok && status != "" {
		return status
	}
	return DocPending
}

// Clone returns a deep copy. Transitions mutate a clone so a failed
// precondition can never leave a partially updated dossier behind.
func (d *Dossier) Clone() *Dossier {
	cp := *d
	if d.Products != nil {
		cp.Products = make([]Product, len(d.Products))
		copy(cp.Products, d.Products)
	}
	if d.Documents != nil {
		cp.Documents = make(map[DocID]DocStatus, len(d.Documents))
		for id, status := range d.Documents {
			cp.Documents[id] = status
		}
	}
	if d.Receiving != nil {
		cp.Receiving = make([]ReceivingRecord, len(d.Receiving))
		copy(cp.Receiving, d.Receiving)
	}
	if d.History != nil {
		cp.History = make(History, len(d.History))
		copy(cp.History, d.History)
	}
	return &cp
}
