package config

import "fmt"

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}

	if c.Ctags == "" {
		return fmt.Errorf("ctags must not be empty")
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	return nil
}

// Validate checks that every limit is positive.
func (t *ThresholdsConfig) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"max_function_length", t.MaxFunctionLength},
		{"max_main_length", t.MaxMainLength},
		{"long_line", t.LongLine},
		{"comment_gap", t.CommentGap},
		{"max_arguments", t.MaxArguments},
	}

	for _, limit := range limits {
		if limit.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", limit.name, limit.value)
		}
	}

	return nil
}
