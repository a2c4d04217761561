package workflow

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"importflow/internal/config"
	"importflow/internal/dossier"
	"importflow/internal/engine"
	"importflow/internal/export"
	"importflow/internal/receiving"
	"importflow/internal/sla"
	"importflow/internal/store"
	"importflow/internal/worklist"
)

// Service owns the dossier collection and the acting role. It is the
// command surface the CLI calls into: it authorizes and applies
// transitions through the engine, persists after every mutation, and
// derives worklist and SLA views. All methods are synchronous; the service
// assumes a single caller (the store's file lock enforces this across
// processes).
type Service struct {
	cfg    *config.Config
	store  store.Store
	engine *engine.Engine
	logger *slog.Logger
	clock  func() time.Time

	dossiers []*dossier.Dossier
	role     dossier.Role
}

// Option adjusts service construction.
type Option func(*Service)

// WithClock pins the service and engine clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// NewService loads state from the store, falling back to the seed
// collection when state is absent or unreadable.
func NewService(cfg *config.Config, st store.Store, logger *slog.Logger, opts ...Option) (*Service, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("workflow service requires config and store")
	}
	if logger == nil {
		logger = slog.Default()
	}

	svc := &Service{
		cfg:    cfg,
		store:  st,
		logger: logger.With("component", "workflow"),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.engine = engine.New(svc.clock)

	dossiers, err := st.LoadDossiers()
	if err != nil {
		if !errors.Is(err, store.ErrNoState) {
			svc.logger.Warn("stored dossiers unreadable, using seed data", "error", err)
		}
		dossiers = store.Seed(svc.clock())
		if err := st.SaveDossiers(dossiers); err != nil {
			return nil, fmt.Errorf("persist seed data: %w", err)
		}
	}
	svc.dossiers = dossiers

	role, err := st.LoadRole()
	if err != nil {
		role, _ = dossier.ParseRole(cfg.Workflow.DefaultRole)
		if role == "" {
			role = dossier.RoleCOMEX
		}
	}
	svc.role = role

	return svc, nil
}

// Role returns the acting role.
func (s *Service) Role() dossier.Role {
	return s.role
}

// SetRole selects and persists the acting role.
func (s *Service) SetRole(role dossier.Role) error {
	if _, ok := dossier.ParseRole(string(role)); !ok {
		return fmt.Errorf("unknown role %q", role)
	}
	s.role = role
	if err := s.store.SaveRole(role); err != nil {
		return fmt.Errorf("persist role: %w", err)
	}
	return nil
}

// ActAs overrides the acting role for subsequent commands without
// persisting the selection.
func (s *Service) ActAs(role dossier.Role) {
	s.role = role
}

// Dossiers returns the collection in storage order.
func (s *Service) Dossiers() []*dossier.Dossier {
	cp := make([]*dossier.Dossier, len(s.dossiers))
	copy(cp, s.dossiers)
	return cp
}

// Get finds a dossier by identifier.
func (s *Service) Get(id string) (*dossier.Dossier, error) {
	for _, d := range s.dossiers {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("dossier %q not found", id)
}

// Calculator returns the SLA calculator configured for this service.
func (s *Service) Calculator() sla.Calculator {
	return sla.Calculator{
		Now:                  s.clock,
		AtRiskThresholdHours: s.cfg.SLA.AtRiskThresholdHours,
		AllowanceHours:       s.cfg.SLA.DefaultAllowanceHours,
	}
}

// SLA evaluates the SLA status of one dossier.
func (s *Service) SLA(d *dossier.Dossier) sla.Status {
	return s.Calculator().Evaluate(d)
}

// apply runs one transition against the identified dossier and persists
// the replacement on success.
func (s *Service) apply(id string, transition func(*dossier.Dossier) (engine.Result, error)) (engine.Result, error) {
	current, err := s.Get(id)
	if err != nil {
		return engine.Result{}, err
	}

	result, err := transition(current)
	if err != nil {
		s.logger.Warn("transition rejected", "dossier", id, "role", string(s.role), "error", err)
		return engine.Result{}, err
	}

	if err := s.replace(result.Dossier); err != nil {
		return engine.Result{}, err
	}
	s.logger.Info("transition applied",
		"dossier", id,
		"role", string(s.role),
		"stage", string(result.Dossier.Stage()),
		"message", result.Message,
	)
	return result, nil
}

func (s *Service) replace(next *dossier.Dossier) error {
	for i, d := range s.dossiers {
		if d.ID == next.ID {
			previous := s.dossiers[i]
			s.dossiers[i] = next
			if err := s.store.SaveDossiers(s.dossiers); err != nil {
				s.dossiers[i] = previous
				return fmt.Errorf("persist dossiers: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("dossier %q not found", next.ID)
}

// SendToQF advances a dossier from COMEX Review to QF Review.
func (s *Service) SendToQF(id string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.SendToQF(d, s.role)
	})
}

// ApproveQF records regulatory approval and moves to Entry Scheduling.
func (s *Service) ApproveQF(id string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.ApproveQF(d, s.role)
	})
}

// ObserveQF returns a dossier to COMEX without advancing the stage.
func (s *Service) ObserveQF(id string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.ObserveQF(d, s.role)
	})
}

// ScheduleEntry books the warehouse entry.
func (s *Service) ScheduleEntry(id string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.ScheduleEntry(d, s.role)
	})
}

// RecordReceipt validates and appends a receiving record.
func (s *Service) RecordReceipt(id string, candidate receiving.Candidate) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.RecordReceipt(d, s.role, candidate)
	})
}

// FinalRelease closes the dossier after document control.
func (s *Service) FinalRelease(id string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.FinalRelease(d, s.role)
	})
}

// ToggleDocument cycles a checklist document's status.
func (s *Service) ToggleDocument(id string, docID dossier.DocID) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.ToggleDocument(d, s.role, docID)
	})
}

// AddComment prepends a free-text note to the dossier history.
func (s *Service) AddComment(id, text string) (engine.Result, error) {
	return s.apply(id, func(d *dossier.Dossier) (engine.Result, error) {
		return s.engine.AddComment(d, s.role, text)
	})
}

// CreatePreAlert mints a new dossier at the initial stage and prepends it
// to the collection.
func (s *Service) CreatePreAlert() (engine.Result, error) {
	id := s.newDossierID()
	d := s.engine.NewPreAlert(id, s.cfg.SLA.DefaultAllowanceHours)

	next := make([]*dossier.Dossier, 0, len(s.dossiers)+1)
	next = append(next, d)
	next = append(next, s.dossiers...)
	if err := s.store.SaveDossiers(next); err != nil {
		return engine.Result{}, fmt.Errorf("persist dossiers: %w", err)
	}
	s.dossiers = next

	s.logger.Info("pre-alert created", "dossier", id)
	return engine.Result{Dossier: d, Message: "Pre-Alert " + id + " created"}, nil
}

// newDossierID derives an IMP-##### identifier from UUID randomness,
// retrying on the unlikely collision with an existing dossier.
func (s *Service) newDossierID() string {
	for {
		id := fmt.Sprintf("IMP-%05d", 10000+uuid.New().ID()%90000)
		if _, err := s.Get(id); err != nil {
			return id
		}
	}
}

// ResetSeed replaces the collection with the demo dossiers.
func (s *Service) ResetSeed() error {
	seeded := store.Seed(s.clock())
	if err := s.store.SaveDossiers(seeded); err != nil {
		return fmt.Errorf("persist seed data: %w", err)
	}
	s.dossiers = seeded
	s.logger.Info("seed data restored", "count", len(seeded))
	return nil
}

// Worklist evaluates the filter and ordering over the collection. Raw
// filter input is validated at this boundary.
func (s *Service) Worklist(query, stageFilter, sortKey string) ([]*dossier.Dossier, error) {
	params, err := worklist.ParseParams(query, stageFilter, sortKey)
	if err != nil {
		return nil, err
	}
	return worklist.Apply(s.dossiers, params, s.Calculator()), nil
}

// Export writes one dossier as pretty-printed JSON under dir and returns
// the file path.
func (s *Service) Export(id, dir string) (string, error) {
	d, err := s.Get(id)
	if err != nil {
		return "", err
	}
	path, err := export.Write(d, dir)
	if err != nil {
		return "", err
	}
	s.logger.Info("dossier exported", "dossier", id, "path", path)
	return path, nil
}
