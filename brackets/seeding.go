package brackets

import (
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// Seeds above this keep their canonical position when a swap partner is needed.
const protectedSeeds = 4

// BracketSize is the smallest power of two that holds n teams.
func BracketSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// SeedOrder returns, for every slot of a bracket of the given power-of-two size, the seed
// that belongs there. Seeds 1 and 2 land in opposite halves, 1-4 in different quarters,
// and every first-round pair sums to size+1.
func SeedOrder(size int) []int {
	order := []int{1}
	for len(order) < size {
		n := len(order) * 2
		next := make([]int, 0, n)
		for _, s := range order {
			next = append(next, s, n+1-s)
		}
		order = next
	}
	return order
}

type entrant struct {
	team      models.Team
	seed      int
	group     int
	groupRank int
}

func (e entrant) slot(index int) models.BracketSlot {
	return models.BracketSlot{
		Index:           index,
		Occupant:        models.TeamOccupant(e.team),
		Seed:            e.seed,
		OriginGroup:     e.group,
		OriginGroupRank: e.groupRank,
	}
}

func emptySlot(index int) models.BracketSlot {
	return models.BracketSlot{Index: index, Occupant: models.EmptyOccupant()}
}

// sameGroup is false when either side has no known group.
func sameGroup(groupA, groupB int) bool {
	return groupA != 0 && groupA == groupB
}

// entrantsFrom validates the qualifier list and numbers seeds 1..n by OverallRank.
func entrantsFrom(qualifiers []models.OverallStanding) ([]entrant, error) {
	if len(qualifiers) < 2 {
		return nil, fmt.Errorf("%w: %d qualified", ErrInsufficientQualifiers, len(qualifiers))
	}

	ordered := slices.Clone(qualifiers)
	slices.SortStableFunc(ordered, func(a, b models.OverallStanding) int {
		return a.OverallRank - b.OverallRank
	})

	seen := make(map[string]bool, len(ordered))
	entrants := make([]entrant, len(ordered))
	for i, q := range ordered {
		if q.Team.IsZero() {
			return nil, fmt.Errorf("%w: qualifier %d has no team", models.ErrInvalidTeam, i+1)
		}
		if seen[q.Team.Key()] {
			return nil, fmt.Errorf("%w: team %s qualified twice", models.ErrInvalidTeam, q.Team)
		}
		seen[q.Team.Key()] = true
		entrants[i] = entrant{team: q.Team, seed: i + 1, group: q.GroupNumber, groupRank: q.GroupRank}
	}
	return entrants, nil
}

// pairBestVsWorst repeatedly pairs the best remaining entrant with the worst remaining one
// from a different group, or with the worst remaining one when no such team is left.
func pairBestVsWorst(entrants []entrant) [][2]entrant {
	remaining := slices.Clone(entrants)
	pairs := make([][2]entrant, 0, len(remaining)/2)
	for len(remaining) >= 2 {
		best := remaining[0]
		remaining = remaining[1:]

		pick := len(remaining) - 1
		for j := len(remaining) - 1; j >= 0; j-- {
			if !sameGroup(best.group, remaining[j].group) {
				pick = j
				break
			}
		}
		pairs = append(pairs, [2]entrant{best, remaining[pick]})
		remaining = slices.Delete(remaining, pick, pick+1)
	}
	return pairs
}

// avoidSameGroup looks for round-1 pairs whose teams come from the same group and swaps
// the weaker team with a team from another pair so that neither pair keeps a conflict.
// It returns the number of conflicts it could not resolve.
func avoidSameGroup(slots []models.BracketSlot) int {
	full := func(pair int) bool {
		return slots[2*pair].Occupant.IsTeam() && slots[2*pair+1].Occupant.IsTeam()
	}
	conflicted := func(pair int) bool {
		return full(pair) && sameGroup(slots[2*pair].OriginGroup, slots[2*pair+1].OriginGroup)
	}

	pairs := len(slots) / 2
	unresolved := 0
	for i := 0; i < pairs; i++ {
		if !conflicted(i) {
			continue
		}
		first := slots[2*i]
		best := -1
		for j := 0; j < pairs; j++ {
			if j == i || !full(j) {
				continue
			}
			for _, c := range []int{2 * j, 2*j + 1} {
				opponent := c ^ 1
				if sameGroup(first.OriginGroup, slots[c].OriginGroup) ||
					sameGroup(first.OriginGroup, slots[opponent].OriginGroup) {
					continue
				}
				if best < 0 || preferSwap(slots[c], slots[best]) {
					best = c
				}
			}
		}
		if best < 0 {
			unresolved++
			continue
		}
		swapSlots(slots, 2*i+1, best)
	}
	return unresolved
}

// preferSwap favours unprotected seeds, then the weaker seed.
func preferSwap(candidate, current models.BracketSlot) bool {
	candidateFree := candidate.Seed > protectedSeeds
	currentFree := current.Seed > protectedSeeds
	if candidateFree != currentFree {
		return candidateFree
	}
	return candidate.Seed > current.Seed
}

// swapSlots exchanges bracket positions, never seed numbers.
func swapSlots(slots []models.BracketSlot, i, j int) {
	a, b := slots[i], slots[j]
	a.Index, b.Index = j, i
	slots[i], slots[j] = b, a
}
