// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	for i := range cfg.Indicator.Outputs {
		o := &cfg.Indicator.Outputs[i]

		// Polarity is made explicit here so later stages never guess.
		// The status line is wired active-low; the level lines active-high.
		if o.ActiveLow == nil {
			v := o.ID == OutputStatus
			o.ActiveLow = &v
		}
	}
}

// Output returns the output config with the given id.
func (ic IndicatorConfig) Output(id string) (OutputConfig, bool) {
	for _, o := range ic.Outputs {
		if o.ID == id {
			return o, true
		}
	}
	return OutputConfig{}, false
}
