package brackets

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// SelectQualifiers takes the first perGroup entries of every group and orders them into a
// single seeding list: all group winners, then all runners-up, and so on. Teams holding the
// same group position are ranked against each other with the group chain. OverallRank of
// the result is the seed.
func SelectQualifiers(standings map[int][]models.GroupStanding, perGroup int) ([]models.OverallStanding, error) {
	if perGroup < 1 {
		return nil, fmt.Errorf("%w: qualifiers per group must be positive, got %d", ErrInvalidOptions, perGroup)
	}

	groupNumbers := make([]int, 0, len(standings))
	for n := range standings {
		groupNumbers = append(groupNumbers, n)
	}
	slices.Sort(groupNumbers)

	var picked []models.OverallStanding
	for _, n := range groupNumbers {
		rows := standings[n]
		take := min(perGroup, len(rows))
		for i := 0; i < take; i++ {
			s := rows[i]
			s.GroupNumber = n
			picked = append(picked, models.OverallStanding{GroupStanding: s, GroupRank: i + 1})
		}
	}

	if len(picked) < 2 {
		return nil, fmt.Errorf("%w: %d qualified", ErrInsufficientQualifiers, len(picked))
	}

	ordered := orderBy(picked, compareQualifiers)
	for i := range ordered {
		ordered[i].OverallRank = i + 1
	}
	return ordered, nil
}

func compareQualifiers(a, b models.OverallStanding) int {
	if c := cmp.Compare(a.GroupRank, b.GroupRank); c != 0 {
		return c
	}
	return CompareGroupStandings(a.GroupStanding, b.GroupStanding)
}

// SeedTeams turns a plain ordered team list (strongest first) into qualifiers, for
// tournaments that start directly with the elimination stage.
func SeedTeams(teams []models.Team) ([]models.OverallStanding, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientTeams, len(teams))
	}
	seeded := make([]models.OverallStanding, len(teams))
	for i, t := range teams {
		seeded[i] = models.OverallStanding{
			GroupStanding: models.GroupStanding{Team: t},
			OverallRank:   i + 1,
		}
	}
	return seeded, nil
}
