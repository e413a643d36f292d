package brackets

import (
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// ComputeGroupStandings folds the completed matches of one group into ranked standings.
// Incomplete matches, matches missing a team and tied or unscored results contribute
// nothing. Ranks are unique and 1-based.
func ComputeGroupStandings(matches []models.Match) []models.GroupStanding {
	rows := foldMatches(matches)
	ordered := orderBy(rows, CompareGroupStandings)
	for i := range ordered {
		ordered[i].Rank = i + 1
	}
	return ordered
}

// ComputeOverallStandings ranks every team of every group together. Each entry keeps the
// rank it holds inside its own group.
func ComputeOverallStandings(matches []models.Match) []models.OverallStanding {
	byGroup := MatchesByGroup(matches)
	groupNumbers := make([]int, 0, len(byGroup))
	for n := range byGroup {
		groupNumbers = append(groupNumbers, n)
	}
	slices.Sort(groupNumbers)

	var all []models.OverallStanding
	for _, n := range groupNumbers {
		for _, s := range ComputeGroupStandings(byGroup[n]) {
			all = append(all, models.OverallStanding{GroupStanding: s, GroupRank: s.Rank})
		}
	}

	ordered := orderBy(all, func(a, b models.OverallStanding) int {
		return CompareOverallStandings(a.GroupStanding, b.GroupStanding)
	})
	for i := range ordered {
		ordered[i].OverallRank = i + 1
	}
	return ordered
}

// StandingsByGroup computes ranked standings for every group present in matches.
func StandingsByGroup(matches []models.Match) map[int][]models.GroupStanding {
	out := make(map[int][]models.GroupStanding)
	for n, groupMatches := range MatchesByGroup(matches) {
		out[n] = ComputeGroupStandings(groupMatches)
	}
	return out
}

// countable reports whether m is a decided result between two teams.
func countable(m models.Match) (models.Team, models.Team, int, int, bool) {
	if !m.Completed || m.Walkover {
		return models.Team{}, models.Team{}, 0, 0, false
	}
	t1, t2, ok := m.Teams()
	if !ok {
		return models.Team{}, models.Team{}, 0, 0, false
	}
	s1, s2, ok := m.Scores()
	if !ok || s1 == s2 {
		return models.Team{}, models.Team{}, 0, 0, false
	}
	return t1, t2, s1, s2, true
}

// foldMatches returns one row per team, sorted by participant ids so the ranking does not
// depend on match order.
func foldMatches(matches []models.Match) []models.GroupStanding {
	index := make(map[string]*models.GroupStanding)
	entry := func(t models.Team, group int) *models.GroupStanding {
		if row, ok := index[t.Key()]; ok {
			return row
		}
		row := &models.GroupStanding{
			Team:        t,
			GroupNumber: group,
			HeadToHead:  make(map[string]models.HeadToHead),
		}
		index[t.Key()] = row
		return row
	}

	for _, m := range matches {
		t1, t2, s1, s2, ok := countable(m)
		if !ok {
			continue
		}
		record(entry(t1, m.GroupNumber), t2, s1, s2)
		record(entry(t2, m.GroupNumber), t1, s2, s1)
	}

	rows := make([]models.GroupStanding, 0, len(index))
	for _, row := range index {
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, func(a, b models.GroupStanding) int {
		return models.CompareTeamIDs(a.Team, b.Team)
	})
	return rows
}

func record(row *models.GroupStanding, opponent models.Team, own, other int) {
	row.MatchesPlayed++
	row.GamesWon += own
	row.GamesLost += other

	h := row.HeadToHead[opponent.Key()]
	h.GamesWon += own
	h.GamesLost += other
	if own > other {
		row.Wins++
		h.Wins++
	} else {
		row.Losses++
	}
	row.HeadToHead[opponent.Key()] = h

	row.GameDifference = row.GamesWon - row.GamesLost
}
