package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-bracket/models"
)

func rowFor(t *testing.T, rows []models.GroupStanding, tm models.Team) models.GroupStanding {
	t.Helper()
	for _, r := range rows {
		if r.Team.Equals(tm) {
			return r
		}
	}
	t.Fatalf("no standing for %s", tm)
	return models.GroupStanding{}
}

func TestComputeGroupStandings_Totals(t *testing.T) {
	a, b, c := team("a"), team("b"), team("c")
	rows := ComputeGroupStandings([]models.Match{
		played("G1M1", a, b, 6, 2),
		played("G1M2", a, c, 4, 6),
	})
	require.Len(t, rows, 3)

	ra := rowFor(t, rows, a)
	assert.Equal(t, 1, ra.Wins)
	assert.Equal(t, 1, ra.Losses)
	assert.Equal(t, 2, ra.MatchesPlayed)
	assert.Equal(t, 10, ra.GamesWon)
	assert.Equal(t, 8, ra.GamesLost)
	assert.Equal(t, 2, ra.GameDifference)
	assert.Equal(t, 1, ra.GroupNumber)

	h, ok := ra.Against(b)
	require.True(t, ok)
	assert.Equal(t, models.HeadToHead{Wins: 1, GamesWon: 6, GamesLost: 2}, h)

	// a +2, c +2 with 6 games won, b -4; a won more games.
	assert.True(t, rows[0].Team.Equals(a))
	assert.True(t, rows[1].Team.Equals(c))
	assert.True(t, rows[2].Team.Equals(b))
	for i, r := range rows {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestComputeGroupStandings_SkipsUndecidedMatches(t *testing.T) {
	a, b, c := team("a"), team("b"), team("c")

	pending := played("G1M2", a, c, 6, 0)
	pending.Completed = false

	tied := played("G1M3", b, c, 5, 5)

	walkover := played("G1M4", a, b, 1, 0)
	walkover.Walkover = true

	missing := models.Match{
		ID: "G1M5", Stage: models.StageGroup, GroupNumber: 1,
		Team1: models.TeamOccupant(a), Team2: models.EmptyOccupant(),
		Score1: models.IntPtr(6), Score2: models.IntPtr(0), Completed: true,
	}

	unscored := played("G1M6", b, c, 6, 1)
	unscored.Score2 = nil

	rows := ComputeGroupStandings([]models.Match{
		played("G1M1", a, b, 6, 3),
		pending, tied, walkover, missing, unscored,
	})
	require.Len(t, rows, 2)
	ra := rowFor(t, rows, a)
	assert.Equal(t, 1, ra.MatchesPlayed)
	assert.Equal(t, 3, ra.GameDifference)
}

func TestComputeGroupStandings_HeadToHeadBeatsParticipantIDs(t *testing.T) {
	// "z" ids sort after "b" ids, so only head-to-head can put z ahead.
	z, b, c := team("z"), team("b"), team("c")
	rows := ComputeGroupStandings([]models.Match{
		played("G1M1", z, b, 6, 4),
		played("G1M2", z, c, 3, 6),
		played("G1M3", b, c, 5, 4),
	})
	require.Len(t, rows, 3)

	rz, rb := rowFor(t, rows, z), rowFor(t, rows, b)
	require.Equal(t, rz.GameDifference, rb.GameDifference)
	require.Equal(t, rz.GamesWon, rb.GamesWon)

	assert.True(t, rows[0].Team.Equals(c))
	assert.True(t, rows[1].Team.Equals(z))
	assert.True(t, rows[2].Team.Equals(b))
}

func TestComputeGroupStandings_MatchesPlayedThenIDs(t *testing.T) {
	p, q, x, y, w := team("p"), team("q"), team("x"), team("y"), team("w")

	t.Run("more matches played ranks ahead", func(t *testing.T) {
		rows := ComputeGroupStandings([]models.Match{
			played("G1M1", p, x, 6, 0),
			played("G1M2", q, y, 3, 0),
			played("G1M3", q, w, 3, 0),
		})
		assert.True(t, rows[0].Team.Equals(q))
		assert.True(t, rows[1].Team.Equals(p))
	})

	t.Run("identical records fall back to ids", func(t *testing.T) {
		rows := ComputeGroupStandings([]models.Match{
			played("G1M1", q, y, 6, 2),
			played("G1M2", p, x, 6, 2),
		})
		assert.True(t, rows[0].Team.Equals(p))
		assert.True(t, rows[1].Team.Equals(q))
	})
}

func TestComputeGroupStandings_CyclicHeadToHead(t *testing.T) {
	a, b, c := team("a"), team("b"), team("c")
	matches := []models.Match{
		played("G1M1", a, b, 6, 4),
		played("G1M2", b, c, 6, 4),
		played("G1M3", c, a, 6, 4),
	}
	rows := ComputeGroupStandings(matches)
	require.Len(t, rows, 3)
	for i := 0; i+1 < len(rows); i++ {
		assert.Negative(t, CompareGroupStandings(rows[i], rows[i+1]),
			"%s must rank ahead of %s", rows[i].Team, rows[i+1].Team)
	}

	// Reordering the input must not change the outcome.
	reversed := ComputeGroupStandings([]models.Match{matches[2], matches[1], matches[0]})
	for i := range rows {
		assert.True(t, rows[i].Team.Equals(reversed[i].Team))
	}
}

func TestComputeGroupStandings_RandomGroups(t *testing.T) {
	rng := seeded(7)
	for round := 0; round < 200; round++ {
		size := 3 + rng.IntN(3)
		group := []models.Group{{Number: 1, Teams: teams(size)}}
		matches := GenerateGroupMatches(group)
		for i := range matches {
			s1, s2 := rng.IntN(7), rng.IntN(7)
			if s1 == s2 {
				s1++
			}
			m := played(matches[i].ID, teamOf(matches[i].Team1), teamOf(matches[i].Team2), s1, s2)
			matches[i] = m
		}

		rows := ComputeGroupStandings(matches)
		require.Len(t, rows, size)
		for i, r := range rows {
			require.Equal(t, i+1, r.Rank)
			require.Equal(t, r.GamesWon-r.GamesLost, r.GameDifference)
			require.Equal(t, size-1, r.MatchesPlayed)
			if i+1 < len(rows) {
				require.Negative(t, CompareGroupStandings(r, rows[i+1]))
			}
		}
	}
}

func TestComputeOverallStandings(t *testing.T) {
	a, b, c := team("a"), team("b"), team("c")
	d, e := team("d"), team("e")
	matches := []models.Match{
		inGroup(1, played("G1M1", a, b, 6, 5)),
		inGroup(1, played("G1M2", a, c, 6, 5)),
		inGroup(1, played("G1M3", b, c, 6, 0)),
		inGroup(2, played("G2M1", d, e, 6, 0)),
	}

	overall := ComputeOverallStandings(matches)
	require.Len(t, overall, 5)

	// a is second in its group on game difference but has the most wins.
	assert.True(t, overall[0].Team.Equals(a))
	assert.Equal(t, 2, overall[0].GroupRank)
	assert.Equal(t, 1, overall[0].GroupNumber)

	assert.True(t, overall[1].Team.Equals(d))
	assert.Equal(t, 1, overall[1].GroupRank)
	assert.Equal(t, 2, overall[1].GroupNumber)

	assert.True(t, overall[2].Team.Equals(b))
	assert.Equal(t, 1, overall[2].GroupRank)

	assert.True(t, overall[3].Team.Equals(e))
	assert.True(t, overall[4].Team.Equals(c))

	for i, s := range overall {
		assert.Equal(t, i+1, s.OverallRank)
	}
}

func TestStandingsByGroup(t *testing.T) {
	a, b, c, d := team("a"), team("b"), team("c"), team("d")
	byGroup := StandingsByGroup([]models.Match{
		inGroup(1, played("G1M1", a, b, 6, 1)),
		inGroup(2, played("G2M1", c, d, 2, 6)),
	})
	require.Len(t, byGroup, 2)
	assert.True(t, byGroup[1][0].Team.Equals(a))
	assert.True(t, byGroup[2][0].Team.Equals(d))
}
