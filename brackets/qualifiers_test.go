package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-bracket/models"
)

func standing(tm models.Team, gd, gamesWon int) models.GroupStanding {
	return models.GroupStanding{
		Team:           tm,
		GameDifference: gd,
		GamesWon:       gamesWon,
		GamesLost:      gamesWon - gd,
		MatchesPlayed:  2,
	}
}

func TestSelectQualifiers_WinnersBeforeRunnersUp(t *testing.T) {
	a1, a2, a3 := team("a1"), team("a2"), team("a3")
	b1, b2, b3 := team("b1"), team("b2"), team("b3")
	c1, c2 := team("c1"), team("c2")

	byGroup := map[int][]models.GroupStanding{
		1: {standing(a1, 3, 12), standing(a2, 8, 12), standing(a3, -11, 2)},
		2: {standing(b1, 9, 12), standing(b2, 1, 9), standing(b3, -10, 1)},
		3: {standing(c1, 5, 8), standing(c2, -5, 3)},
	}

	qualifiers, err := SelectQualifiers(byGroup, 2)
	require.NoError(t, err)
	require.Len(t, qualifiers, 6)

	want := []models.Team{b1, c1, a1, a2, b2, c2}
	for i, q := range qualifiers {
		assert.True(t, q.Team.Equals(want[i]), "seed %d: got %s, want %s", i+1, q.Team, want[i])
		assert.Equal(t, i+1, q.OverallRank)
	}
	assert.Equal(t, 1, qualifiers[0].GroupRank)
	assert.Equal(t, 2, qualifiers[0].GroupNumber)
	assert.Equal(t, 2, qualifiers[3].GroupRank)
	assert.Equal(t, 1, qualifiers[3].GroupNumber)
}

func TestSelectQualifiers_SmallGroupsGiveWhatTheyHave(t *testing.T) {
	a1, b1, b2 := team("a1"), team("b1"), team("b2")
	qualifiers, err := SelectQualifiers(map[int][]models.GroupStanding{
		1: {standing(a1, 2, 6)},
		2: {standing(b1, 4, 6), standing(b2, -4, 2)},
	}, 3)
	require.NoError(t, err)
	assert.Len(t, qualifiers, 3)
}

func TestSelectQualifiers_Errors(t *testing.T) {
	single := map[int][]models.GroupStanding{1: {standing(team("a"), 1, 6), standing(team("b"), -1, 5)}}

	_, err := SelectQualifiers(single, 0)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = SelectQualifiers(single, 1)
	assert.ErrorIs(t, err, ErrInsufficientQualifiers)

	_, err = SelectQualifiers(map[int][]models.GroupStanding{}, 2)
	assert.ErrorIs(t, err, ErrInsufficientQualifiers)
}

func TestSeedTeams(t *testing.T) {
	input := teams(3)
	seeded, err := SeedTeams(input)
	require.NoError(t, err)
	for i, s := range seeded {
		assert.True(t, s.Team.Equals(input[i]))
		assert.Equal(t, i+1, s.OverallRank)
		assert.Zero(t, s.GroupNumber)
	}

	_, err = SeedTeams(input[:1])
	assert.ErrorIs(t, err, ErrInsufficientTeams)
}
