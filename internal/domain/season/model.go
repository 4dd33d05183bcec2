package season

import "fmt"

// Season is one competition year, e.g. "2024-2025". Every pipeline run
// targets exactly one season, selected by configuration.
type Season struct {
	ID    int64
	Label string
}

func (s Season) Validate() error {
	if s.Label == "" {
		return fmt.Errorf("season label is required")
	}

	return nil
}
