package team

import "fmt"

// Team is a club as stored canonically. Name uniqueness is a precondition
// the resolver relies on; it is enforced by the schema, not the pipeline.
type Team struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
