// Package receiving validates candidate physical-receipt entries before
// they are appended to a dossier. Accepted records are immutable; an
// amendment is a new record.
package receiving

import (
	"strconv"
	"strings"
	"time"

	"importflow/internal/dossier"
	"importflow/internal/fault"
)

// Candidate is an unvalidated receipt entry as captured from the caller.
// Quantity arrives as text and must parse to a positive number.
// TemperatureOK defaults to true when left nil.
type Candidate struct {
	Lot           string
	Expiry        string
	Quantity      string
	ColdChain     bool
	TemperatureOK *bool
}

const expiryLayout = "2006-01"

// Validate checks a candidate and converts it into an immutable receiving
// record stamped at the given time. Failures wrap fault.Validation and name
// every unmet field.
func Validate(c Candidate, at time.Time) (dossier.ReceivingRecord, error) {
	lot := strings.TrimSpace(c.Lot)
	expiry := strings.TrimSpace(c.Expiry)
	quantity := strings.TrimSpace(c.Quantity)

	var missing []string
	if lot == "" {
		missing = append(missing, "lot")
	}
	if expiry == "" {
		missing = append(missing, "expiry")
	}
	if quantity == "" {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return dossier.ReceivingRecord{}, fault.Wrap(fault.Validation, "record receipt",
			"missing required fields: "+strings.Join(missing, ", "))
	}

	if _, err := time.Parse(expiryLayout, expiry); err != nil {
		return dossier.ReceivingRecord{}, fault.Wrap(fault.Validation, "record receipt",
			"expiry must use YYYY-MM, got "+strconv.Quote(expiry))
	}

	qty, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return dossier.ReceivingRecord{}, fault.Wrap(fault.Validation, "record receipt",
			"quantity must be a number, got "+strconv.Quote(quantity))
	}
	if qty <= 0 {
		return dossier.ReceivingRecord{}, fault.Wrap(fault.Validation, "record receipt",
			"quantity must be positive")
	}

	tempOK := true
	if c.TemperatureOK != nil {
		tempOK = *c.TemperatureOK
	}

	return dossier.ReceivingRecord{
		Lot:           lot,
		Expiry:        expiry,
		Quantity:      qty,
		ColdChain:     c.ColdChain,
		TemperatureOK: tempOK,
		RecordedAt:    at.UTC(),
	}, nil
}
