package domain

import (
	"github.com/google/uuid"
)

// Rival is a reference character the trainee compares their power level against.
type Rival struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Series     string    `json:"series"`
	PowerLevel int       `json:"powerLevel"`
	Symbol     string    `json:"symbol"` // icon name for the display layer
}

// CanBeat reports whether a trainee at powerLevel defeats the rival. Ties go to the trainee.
func (r Rival) CanBeat(powerLevel int) bool {
	return powerLevel >= r.PowerLevel
}
