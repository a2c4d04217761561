package config

import (
	"fmt"
	"strings"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validRoles = map[string]struct{}{
	"comex":      {},
	"operations": {},
	"qf":         {},
}

// Validate checks configuration invariants after normalization.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return fmt.Errorf("paths.data_dir must not be empty")
	}
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.SLA.AtRiskThresholdHours <= 0 {
		return fmt.Errorf("sla.at_risk_threshold_hours must be positive, got %v", c.SLA.AtRiskThresholdHours)
	}
	if c.SLA.DefaultAllowanceHours <= 0 {
		return fmt.Errorf("sla.default_allowance_hours must be positive, got %d", c.SLA.DefaultAllowanceHours)
	}
	if _, ok := validRoles[strings.ToLower(c.Workflow.DefaultRole)]; !ok {
		return fmt.Errorf("workflow.default_role: unknown role %q", c.Workflow.DefaultRole)
	}
	return nil
}
