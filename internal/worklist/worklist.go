// Package worklist filters and orders the dossier collection for display.
// It never mutates its input and keeps the incoming order for equal sort
// keys.
package worklist

import (
	"fmt"
	"sort"
	"strings"

	"importflow/internal/dossier"
	"importflow/internal/sla"
	"importflow/internal/stage"
	"importflow/internal/textutil"
)

// SortKey selects the worklist ordering.
type SortKey string

const (
	SortETAAsc  SortKey = "eta_asc"
	SortETADesc SortKey = "eta_desc"
	SortSLAAsc  SortKey = "sla_asc"
	SortSLADesc SortKey = "sla_desc"
)

// ParseSortKey converts free-form input into a known sort key. Empty input
// defaults to ETA ascending.
func ParseSortKey(value string) (SortKey, bool) {
	normalized := SortKey(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case "":
		return SortETAAsc, true
	case SortETAAsc, SortETADesc, SortSLAAsc, SortSLADesc:
		return normalized, true
	}
	return "", false
}

// Params describe one worklist evaluation. A zero Stage means no stage
// filter; an empty Query matches everything.
type Params struct {
	Query string
	Stage stage.Stage
	Sort  SortKey
}

// ParseParams validates raw filter input at the boundary. The stage filter
// accepts "", "all", or a catalog stage name.
func ParseParams(query, stageFilter, sortKey string) (Params, error) {
	params := Params{Query: strings.TrimSpace(query)}

	trimmed := strings.TrimSpace(stageFilter)
	if trimmed != "" && !strings.EqualFold(trimmed, "all") {
		st, ok := stage.Parse(trimmed)
		if !ok {
			return Params{}, fmt.Errorf("unknown stage filter %q", stageFilter)
		}
		params.Stage = st
	}

	sk, ok := ParseSortKey(sortKey)
	if !ok {
		return Params{}, fmt.Errorf("unknown sort key %q", sortKey)
	}
	params.Sort = sk
	return params, nil
}

// Apply evaluates the filter and ordering over the collection, returning a
// new slice. SLA ordering uses the provided calculator so tests can pin the
// clock.
func Apply(dossiers []*dossier.Dossier, params Params, calc sla.Calculator) []*dossier.Dossier {
	out := make([]*dossier.Dossier, 0, len(dossiers))
	for _, d := range dossiers {
		if params.Query != "" && !matchesQuery(d, params.Query) {
			continue
		}
		if params.Stage != "" && d.Stage() != params.Stage {
			continue
		}
		out = append(out, d)
	}

	sortDossiers(out, params.Sort, calc)
	return out
}

func matchesQuery(d *dossier.Dossier, query string) bool {
	for _, field := range []string{d.ID, d.Supplier, d.Warehouse, d.TransportMode, d.Forwarder} {
		if textutil.ContainsFold(field, query) {
			return true
		}
	}
	return false
}

func sortDossiers(out []*dossier.Dossier, key SortKey, calc sla.Calculator) {
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortETADesc:
			return b.ETA.Before(a.ETA)
		case SortSLAAsc:
			return calc.Evaluate(a).HoursRemaining < calc.Evaluate(b).HoursRemaining
		case SortSLADesc:
			return calc.Evaluate(b).HoursRemaining < calc.Evaluate(a).HoursRemaining
		default:
			return a.ETA.Before(b.ETA)
		}
	})
}
