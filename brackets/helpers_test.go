package brackets

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"

	"github.com/Dosada05/tournament-bracket/models"
)

var cmpModels = cmp.AllowUnexported(models.Occupant{}, models.Team{})

func team(name string) models.Team {
	return models.MustTeam(models.ParticipantID(name+"-1"), models.ParticipantID(name+"-2"))
}

func teams(n int) []models.Team {
	out := make([]models.Team, n)
	for i := range out {
		out[i] = team(fmt.Sprintf("t%02d", i+1))
	}
	return out
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func played(id string, t1, t2 models.Team, s1, s2 int) models.Match {
	m := models.Match{
		ID:          id,
		Stage:       models.StageGroup,
		GroupNumber: 1,
		Team1:       models.TeamOccupant(t1),
		Team2:       models.TeamOccupant(t2),
		Score1:      models.IntPtr(s1),
		Score2:      models.IntPtr(s2),
		Completed:   true,
		Winner:      models.WinnerTeam1,
	}
	if s2 > s1 {
		m.Winner = models.WinnerTeam2
	}
	return m
}

func inGroup(group int, m models.Match) models.Match {
	m.GroupNumber = group
	return m
}

// qualifiersFrom builds qualifiers ranked 1..n, the i-th coming from groups[i].
func qualifiersFrom(groups ...int) []models.OverallStanding {
	qs := make([]models.OverallStanding, len(groups))
	for i, g := range groups {
		qs[i] = models.OverallStanding{
			GroupStanding: models.GroupStanding{Team: team(fmt.Sprintf("q%02d", i+1)), GroupNumber: g},
			GroupRank:     1,
			OverallRank:   i + 1,
		}
	}
	return qs
}

// distinctGroups gives every qualifier its own group.
func distinctGroups(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func seedOf(qs []models.OverallStanding, t models.Team) int {
	for _, q := range qs {
		if q.Team.Equals(t) {
			return q.OverallRank
		}
	}
	return 0
}

func teamOf(o models.Occupant) models.Team {
	t, _ := o.Team()
	return t
}
