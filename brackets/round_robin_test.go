package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-bracket/models"
)

func TestGenerateGroupMatches(t *testing.T) {
	all := teams(7)
	groups := []models.Group{
		{Number: 1, Teams: all[:4]},
		{Number: 2, Teams: all[4:]},
	}

	matches := GenerateGroupMatches(groups)
	require.Len(t, matches, RoundRobinMatchCount(4)+RoundRobinMatchCount(3))

	appearances := map[string]int{}
	pairs := map[string]bool{}
	for _, m := range matches {
		assert.Equal(t, models.StageGroup, m.Stage)
		assert.Zero(t, m.Round)
		assert.False(t, m.Completed)
		assert.Nil(t, m.Score1)
		assert.Nil(t, m.Score2)

		t1, t2, ok := m.Teams()
		require.True(t, ok, "match %s must have two teams", m.ID)
		appearances[t1.Key()]++
		appearances[t2.Key()]++

		key := t1.Key() + "|" + t2.Key()
		require.False(t, pairs[key], "pair %s generated twice", key)
		pairs[key] = true
	}

	for _, tm := range all[:4] {
		assert.Equal(t, 3, appearances[tm.Key()])
	}
	for _, tm := range all[4:] {
		assert.Equal(t, 2, appearances[tm.Key()])
	}
}

func TestGenerateGroupMatches_PairOrder(t *testing.T) {
	all := teams(3)
	matches := GenerateGroupMatches([]models.Group{{Number: 2, Teams: all}})
	require.Len(t, matches, 3)

	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for i, m := range matches {
		assert.Equal(t, GroupMatchID(2, i+1), m.ID)
		assert.Equal(t, i+1, m.Position)
		assert.Equal(t, 2, m.GroupNumber)
		assert.True(t, teamOf(m.Team1).Equals(all[want[i][0]]))
		assert.True(t, teamOf(m.Team2).Equals(all[want[i][1]]))
	}
}

func TestRoundRobinMatchCount(t *testing.T) {
	assert.Equal(t, 0, RoundRobinMatchCount(0))
	assert.Equal(t, 0, RoundRobinMatchCount(1))
	assert.Equal(t, 1, RoundRobinMatchCount(2))
	assert.Equal(t, 3, RoundRobinMatchCount(3))
	assert.Equal(t, 6, RoundRobinMatchCount(4))
}

func TestMatchesByGroup_SkipsElimination(t *testing.T) {
	a, b := team("a"), team("b")
	matches := []models.Match{
		inGroup(1, played("G1M1", a, b, 6, 2)),
		inGroup(2, played("G2M1", a, b, 6, 2)),
		{ID: "R1M1", Round: 1, Position: 1, Stage: models.StageElimination},
	}
	byGroup := MatchesByGroup(matches)
	assert.Len(t, byGroup, 2)
	assert.Len(t, byGroup[1], 1)
	assert.Len(t, byGroup[2], 1)
}
