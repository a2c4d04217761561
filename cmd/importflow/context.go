package main

import (
	"fmt"
	"strings"
	"sync"

	"importflow/internal/config"
	"importflow/internal/dossier"
	"importflow/internal/logging"
	"importflow/internal/store"
	"importflow/internal/workflow"
)

type commandContext struct {
	configFlag *string
	roleFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, roleFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		roleFlag:   roleFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withService opens the state store, builds the workflow service, applies
// any one-off --role override, and runs fn. The store is closed (and the
// writer lock released) when fn returns.
func (c *commandContext) withService(fn func(*workflow.Service) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	svc, err := workflow.NewService(cfg, st, logger)
	if err != nil {
		return err
	}

	if c.roleFlag != nil && strings.TrimSpace(*c.roleFlag) != "" {
		role, ok := dossier.ParseRole(*c.roleFlag)
		if !ok {
			return fmt.Errorf("unknown role %q", *c.roleFlag)
		}
		svc.ActAs(role)
	}

	return fn(svc)
}
