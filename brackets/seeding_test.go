package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-bracket/models"
)

func TestBracketSize(t *testing.T) {
	assert.Equal(t, 2, BracketSize(2))
	assert.Equal(t, 4, BracketSize(3))
	assert.Equal(t, 8, BracketSize(5))
	assert.Equal(t, 8, BracketSize(8))
	assert.Equal(t, 16, BracketSize(9))

	for n := 2; n <= 130; n++ {
		size := BracketSize(n)
		require.Zero(t, size&(size-1), "size %d for %d teams is not a power of two", size, n)
		require.GreaterOrEqual(t, size, n)
		require.Less(t, size, 2*n)
	}
}

func TestSeedOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2}, SeedOrder(2))
	assert.Equal(t, []int{1, 4, 2, 3}, SeedOrder(4))
	assert.Equal(t, []int{1, 8, 4, 5, 2, 7, 3, 6}, SeedOrder(8))

	for _, size := range []int{2, 4, 8, 16, 32, 64} {
		order := SeedOrder(size)
		require.Len(t, order, size)
		for i := 0; i < size; i += 2 {
			require.Equal(t, size+1, order[i]+order[i+1], "first-round pair at %d", i)
		}
		half := size / 2
		top, bottom := indexOfSeed(order, 1), indexOfSeed(order, 2)
		require.NotEqual(t, top < half, bottom < half, "seeds 1 and 2 share a half in size %d", size)
	}
}

func indexOfSeed(order []int, seed int) int {
	for i, s := range order {
		if s == seed {
			return i
		}
	}
	return -1
}

func TestEntrantsFrom(t *testing.T) {
	qs := qualifiersFrom(1, 2, 3)
	qs[0], qs[2] = qs[2], qs[0]

	entrants, err := entrantsFrom(qs)
	require.NoError(t, err)
	for i, e := range entrants {
		assert.Equal(t, i+1, e.seed)
	}
	assert.Equal(t, 1, entrants[0].group)

	_, err = entrantsFrom(qs[:1])
	assert.ErrorIs(t, err, ErrInsufficientQualifiers)

	dup := qualifiersFrom(1, 2)
	dup[1].Team = dup[0].Team
	_, err = entrantsFrom(dup)
	assert.ErrorIs(t, err, models.ErrInvalidTeam)

	blank := qualifiersFrom(1, 2)
	blank[1].Team = models.Team{}
	_, err = entrantsFrom(blank)
	assert.ErrorIs(t, err, models.ErrInvalidTeam)
}

func TestPairBestVsWorst(t *testing.T) {
	entrants, err := entrantsFrom(qualifiersFrom(1, 2, 3, 4, 4, 3, 2, 1))
	require.NoError(t, err)

	pairs := pairBestVsWorst(entrants)
	got := make([][2]int, len(pairs))
	for i, p := range pairs {
		got[i] = [2]int{p[0].seed, p[1].seed}
		assert.False(t, sameGroup(p[0].group, p[1].group), "pair %v shares a group", got[i])
	}
	assert.Equal(t, [][2]int{{1, 7}, {2, 8}, {3, 5}, {4, 6}}, got)
}

func TestPairBestVsWorst_FallsBackToWorst(t *testing.T) {
	entrants, err := entrantsFrom(qualifiersFrom(1, 1, 1, 1))
	require.NoError(t, err)

	pairs := pairBestVsWorst(entrants)
	require.Len(t, pairs, 2)
	assert.Equal(t, 1, pairs[0][0].seed)
	assert.Equal(t, 4, pairs[0][1].seed)
	assert.Equal(t, 2, pairs[1][0].seed)
	assert.Equal(t, 3, pairs[1][1].seed)
}

func slotsFor(seedsAndGroups ...[2]int) []models.BracketSlot {
	slots := make([]models.BracketSlot, len(seedsAndGroups))
	for i, sg := range seedsAndGroups {
		if sg[0] == 0 {
			slots[i] = emptySlot(i)
			continue
		}
		slots[i] = entrant{team: team("s" + string(rune('a'+sg[0]))), seed: sg[0], group: sg[1]}.slot(i)
	}
	return slots
}

func TestAvoidSameGroup_SwapsWeakestFreeSeed(t *testing.T) {
	slots := slotsFor([2]int{1, 1}, [2]int{8, 1}, [2]int{4, 2}, [2]int{5, 3})

	unresolved := avoidSameGroup(slots)
	assert.Zero(t, unresolved)

	seeds := make([]int, len(slots))
	for i, s := range slots {
		seeds[i] = s.Seed
		assert.Equal(t, i, s.Index)
	}
	assert.Equal(t, []int{1, 5, 4, 8}, seeds)
}

func TestAvoidSameGroup_LeavesByesAlone(t *testing.T) {
	slots := slotsFor([2]int{1, 1}, [2]int{0, 0}, [2]int{2, 2}, [2]int{3, 2})

	unresolved := avoidSameGroup(slots)
	assert.Equal(t, 1, unresolved)
	assert.Equal(t, 1, slots[0].Seed)
	assert.True(t, slots[1].Occupant.IsEmpty())
}

func TestAvoidSameGroup_UnknownGroupsNeverConflict(t *testing.T) {
	slots := slotsFor([2]int{1, 0}, [2]int{4, 0}, [2]int{2, 0}, [2]int{3, 0})
	assert.Zero(t, avoidSameGroup(slots))
	assert.Equal(t, 4, slots[1].Seed)
}
