package brackets

import (
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// NextMatch is where the winner of the match at (round, position) plays next, and whether
// it takes the team1 side.
func NextMatch(round, position int) (models.MatchRef, bool) {
	return models.MatchRef{Round: round + 1, Position: (position + 1) / 2}, position%2 == 1
}

// AdvanceWinner writes the winner of the completed elimination match completedID into its
// side of the next-round match and returns the updated list. The input is not modified.
// Group matches, undecided matches and the final are returned unchanged. Calling it again
// for the same match gives the same result.
func AdvanceWinner(matches []models.Match, completedID string) ([]models.Match, error) {
	out := slices.Clone(matches)
	idx := indexOf(out, completedID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, completedID)
	}

	done := out[idx]
	if done.Stage != models.StageElimination {
		return out, nil
	}
	winner, ok := done.WinnerTeam()
	if !ok {
		return out, nil
	}
	if done.Round < 1 || done.Position < 1 {
		return nil, fmt.Errorf("%w: match %s sits at round %d position %d", ErrStructuralInconsistency, done.ID, done.Round, done.Position)
	}

	ref, team1Side := NextMatch(done.Round, done.Position)
	target := -1
	roundExists := false
	for i, m := range out {
		if m.Stage != models.StageElimination || m.Round != ref.Round {
			continue
		}
		roundExists = true
		if m.Position == ref.Position {
			target = i
			break
		}
	}
	if target < 0 {
		if roundExists {
			return nil, fmt.Errorf("%w: no match at round %d position %d for the winner of %s", ErrStructuralInconsistency, ref.Round, ref.Position, done.ID)
		}
		// done was the final.
		return out, nil
	}

	next := out[target]
	side := &next.Team2
	if team1Side {
		side = &next.Team1
	}

	switch side.Kind() {
	case models.OccupantPlaceholder:
		src, _ := side.Source()
		if src != done.Ref() {
			return nil, fmt.Errorf("%w: %s side of %s waits for R%dM%d, not %s", ErrStructuralInconsistency, sideName(team1Side), next.ID, src.Round, src.Position, done.ID)
		}
	case models.OccupantTeam:
		current, _ := side.Team()
		if current.Equals(winner) {
			return out, nil
		}
		if next.Completed {
			return nil, fmt.Errorf("%w: %s is already decided with %s", ErrStructuralInconsistency, next.ID, current)
		}
	case models.OccupantEmpty:
	}

	*side = models.TeamOccupant(winner)
	out[target] = next
	return out, nil
}

// RecordResult stores the score of a match, completes it and, for elimination matches,
// advances the winner. On error the input is left as it was and nil is returned.
func RecordResult(matches []models.Match, matchID string, score1, score2 int) ([]models.Match, error) {
	idx := indexOf(matches, matchID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	if score1 < 0 || score2 < 0 {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidScore, score1, score2)
	}
	if score1 == score2 {
		return nil, fmt.Errorf("%w: %d-%d in match %s", ErrTiedScore, score1, score2, matchID)
	}

	m := matches[idx]
	if _, _, ok := m.Teams(); !ok {
		return nil, fmt.Errorf("%w: %s (%s vs %s)", ErrMatchNotPlayable, matchID, m.Team1, m.Team2)
	}

	m.Score1 = models.IntPtr(score1)
	m.Score2 = models.IntPtr(score2)
	m.Completed = true
	m.Walkover = false
	m.Winner = models.WinnerTeam2
	if score1 > score2 {
		m.Winner = models.WinnerTeam1
	}

	out := slices.Clone(matches)
	out[idx] = m
	if m.Stage != models.StageElimination {
		return out, nil
	}
	return AdvanceWinner(out, matchID)
}

// Champion returns the winner of the completed final.
func Champion(matches []models.Match) (models.Team, bool) {
	var final *models.Match
	for i := range matches {
		m := &matches[i]
		if m.Stage != models.StageElimination {
			continue
		}
		if final == nil || m.Round > final.Round {
			final = m
		}
	}
	if final == nil {
		return models.Team{}, false
	}
	return final.WinnerTeam()
}

func indexOf(matches []models.Match, id string) int {
	return slices.IndexFunc(matches, func(m models.Match) bool { return m.ID == id })
}

func sideName(team1 bool) string {
	if team1 {
		return "team1"
	}
	return "team2"
}
