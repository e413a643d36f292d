package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-bracket/models"
)

// GroupMatchID is the stable id of the order-th match of a group.
func GroupMatchID(groupNumber, order int) string {
	return fmt.Sprintf("G%dM%d", groupNumber, order)
}

// GenerateGroupMatches creates the round-robin shells: for every group, one unscored match
// per unordered pair (i<j), in pair-generation order. Positions restart at 1 in each group.
func GenerateGroupMatches(groups []models.Group) []models.Match {
	total := 0
	for _, g := range groups {
		total += RoundRobinMatchCount(g.Size())
	}

	matches := make([]models.Match, 0, total)
	for _, g := range groups {
		order := 0
		for i := 0; i < len(g.Teams); i++ {
			for j := i + 1; j < len(g.Teams); j++ {
				order++
				matches = append(matches, models.Match{
					ID:          GroupMatchID(g.Number, order),
					Round:       0,
					Position:    order,
					Stage:       models.StageGroup,
					GroupNumber: g.Number,
					Team1:       models.TeamOccupant(g.Teams[i]),
					Team2:       models.TeamOccupant(g.Teams[j]),
				})
			}
		}
	}
	return matches
}

// RoundRobinMatchCount is n(n-1)/2.
func RoundRobinMatchCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// MatchesByGroup splits group-stage matches by group number.
func MatchesByGroup(matches []models.Match) map[int][]models.Match {
	byGroup := make(map[int][]models.Match)
	for _, m := range matches {
		if m.Stage != models.StageGroup || m.GroupNumber == 0 {
			continue
		}
		byGroup[m.GroupNumber] = append(byGroup[m.GroupNumber], m)
	}
	return byGroup
}
