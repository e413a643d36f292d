package services

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-bracket/models"
)

func isValidStatusTransition(current, next models.TournamentStatus) bool {
	if current == next {
		return true
	}
	allowedTransitions := map[models.TournamentStatus][]models.TournamentStatus{
		models.StatusRegistration: {models.StatusGroupStage, models.StatusElimination},
		models.StatusGroupStage:   {models.StatusElimination},
		models.StatusElimination:  {models.StatusCompleted},
		models.StatusCompleted:    {},
	}
	for _, allowedNextStatus := range allowedTransitions[current] {
		if next == allowedNextStatus {
			return true
		}
	}
	return false
}

func transition(t *models.Tournament, next models.TournamentStatus) error {
	if !isValidStatusTransition(t.Status, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, t.Status, next)
	}
	t.Status = next
	return nil
}

func requireStatus(t models.Tournament, want models.TournamentStatus) error {
	if t.Status != want {
		return fmt.Errorf("%w: tournament %s is in %s, need %s", ErrWrongStage, t.ID, t.Status, want)
	}
	return nil
}

// validateTeams rejects blank teams, repeated teams and players entered in two teams.
func validateTeams(teams []models.Team) error {
	seenTeams := make(map[string]bool, len(teams))
	seenPlayers := make(map[models.ParticipantID]string, 2*len(teams))
	for i, t := range teams {
		if t.IsZero() {
			return fmt.Errorf("%w: team %d has no players", models.ErrInvalidTeam, i+1)
		}
		if seenTeams[t.Key()] {
			return fmt.Errorf("%w: %s", ErrDuplicateTeam, t)
		}
		seenTeams[t.Key()] = true
		for _, p := range t.Players() {
			if other, ok := seenPlayers[p]; ok {
				return fmt.Errorf("%w: %s is in %s and %s", ErrParticipantInTwoTeams, p, other, t)
			}
			seenPlayers[p] = t.String()
		}
	}
	return nil
}

func tournamentAttrs(t models.Tournament) slog.Attr {
	return slog.Group("tournament",
		slog.String("id", t.ID),
		slog.String("name", t.Name),
		slog.String("status", string(t.Status)),
	)
}
