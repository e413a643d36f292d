package brackets

import (
	"cmp"
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// Comparator returns a negative number when a ranks ahead of b, positive when b does.
type Comparator func(a, b models.GroupStanding) int

// CompareGroupStandings ranks teams inside one group: game difference, games won,
// head-to-head, games lost, matches played, then participant ids.
func CompareGroupStandings(a, b models.GroupStanding) int {
	return groupChain(a, b)
}

// CompareOverallStandings ranks teams across groups: wins first, then the group chain.
func CompareOverallStandings(a, b models.GroupStanding) int {
	return overallChain(a, b)
}

var (
	groupChain = chain(
		byGameDifference,
		byGamesWon,
		byHeadToHead,
		byGamesLost,
		byMatchesPlayed,
		byParticipantIDs,
	)
	overallChain = chain(byWins, groupChain)
)

func chain(rules ...Comparator) Comparator {
	return func(a, b models.GroupStanding) int {
		for _, rule := range rules {
			if c := rule(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

func byWins(a, b models.GroupStanding) int {
	return cmp.Compare(b.Wins, a.Wins)
}

func byGameDifference(a, b models.GroupStanding) int {
	return cmp.Compare(b.GameDifference, a.GameDifference)
}

func byGamesWon(a, b models.GroupStanding) int {
	return cmp.Compare(b.GamesWon, a.GamesWon)
}

// byHeadToHead only applies when the pair met directly.
func byHeadToHead(a, b models.GroupStanding) int {
	ha, okA := a.Against(b.Team)
	hb, okB := b.Against(a.Team)
	if !okA || !okB {
		return 0
	}
	if c := cmp.Compare(hb.Wins, ha.Wins); c != 0 {
		return c
	}
	return cmp.Compare(hb.GameDifference(), ha.GameDifference())
}

func byGamesLost(a, b models.GroupStanding) int {
	return cmp.Compare(a.GamesLost, b.GamesLost)
}

func byMatchesPlayed(a, b models.GroupStanding) int {
	return cmp.Compare(b.MatchesPlayed, a.MatchesPlayed)
}

func byParticipantIDs(a, b models.GroupStanding) int {
	return models.CompareTeamIDs(a.Team, b.Team)
}

// orderBy inserts each item before the first placed item it ranks ahead of. With a
// transitive compare this is an insertion sort; with cyclic head-to-head results every
// adjacent pair of the output still respects compare.
func orderBy[T any](items []T, compare func(a, b T) int) []T {
	ordered := make([]T, 0, len(items))
	for _, item := range items {
		at := len(ordered)
		for i, placed := range ordered {
			if compare(item, placed) < 0 {
				at = i
				break
			}
		}
		ordered = slices.Insert(ordered, at, item)
	}
	return ordered
}
