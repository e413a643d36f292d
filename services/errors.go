package services

import "errors"

// Errors shared by the tournament lifecycle operations. Engine errors from the brackets
// package are passed through wrapped, so errors.Is works on both sets.
var (
	ErrValidationFailed       = errors.New("validation failed")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrDuplicateTeam          = errors.New("team is registered twice")
	ErrParticipantInTwoTeams  = errors.New("participant plays in more than one team")
	ErrInvalidFormat          = errors.New("invalid tournament format")

	// Lifecycle errors.
	ErrInvalidStatusTransition = errors.New("invalid tournament status transition")
	ErrWrongStage              = errors.New("operation is not allowed in the current tournament stage")
	ErrGroupStageIncomplete    = errors.New("group stage still has unplayed matches")
	ErrChampionNotDecided      = errors.New("the final has not been played yet")
)
