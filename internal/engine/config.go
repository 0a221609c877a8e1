package engine

// EngineConfig holds configuration options for the engine.
type EngineConfig struct {
	// InputMethodName specifies which input method to use ("Telex" or "VNI")
	InputMethodName string
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		InputMethodName: "Telex",
	}
}

func (c *EngineConfig) inputMethod() InputMethod {
	if c.InputMethodName == "VNI" {
		return VNI
	}
	return Telex
}

// ConfiguredEngine is an Engine paired with the configuration it was
// built from, so callers that hand out config objects (the CLI) can
// read back what's active.
type ConfiguredEngine struct {
	*Engine
	config *EngineConfig
}

// NewConfiguredEngine creates an engine with the given configuration.
func NewConfiguredEngine(config *EngineConfig) *ConfiguredEngine {
	if config == nil {
		config = DefaultConfig()
	}
	e := New()
	e.SetInputMethod(config.inputMethod())
	return &ConfiguredEngine{Engine: e, config: config}
}

// SetConfig updates the engine configuration.
func (e *ConfiguredEngine) SetConfig(config *EngineConfig) {
	e.config = config
	e.Engine.SetInputMethod(config.inputMethod())
}

// GetConfig returns the current configuration.
func (e *ConfiguredEngine) GetConfig() *EngineConfig {
	return e.config
}
