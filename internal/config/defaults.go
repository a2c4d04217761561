package config

// Default returns the baseline configuration before any file overrides.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: "~/.local/share/importflow",
			LogDir:  "~/.local/share/importflow/logs",
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		SLA: SLA{
			AtRiskThresholdHours:  6,
			DefaultAllowanceHours: 24,
		},
		Workflow: Workflow{
			DefaultRole: "COMEX",
		},
	}
}
