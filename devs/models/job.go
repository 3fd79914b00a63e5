package models

import (
	"fmt"

	"github.com/inference-sim/pdevs/devs"
)

// Job is the unit of work flowing through the ef-p frame.
type Job struct {
	ID      int
	Created devs.Time
}

func (j Job) String() string {
	return fmt.Sprintf("job-%d@%s", j.ID, j.Created)
}
