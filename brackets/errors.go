package brackets

import "errors"

var (
	ErrInsufficientTeams       = errors.New("at least 2 teams are required")
	ErrInsufficientQualifiers  = errors.New("at least 2 teams must qualify for the elimination stage")
	ErrTiedScore               = errors.New("tied scores are not a valid result")
	ErrInvalidScore            = errors.New("scores must be non-negative")
	ErrStructuralInconsistency = errors.New("bracket structure is inconsistent")
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchNotPlayable        = errors.New("match does not have two teams yet")
	ErrInvalidOptions          = errors.New("invalid options")
)
