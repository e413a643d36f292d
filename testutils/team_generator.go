package testutils

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Dosada05/tournament-bracket/models"
)

// TeamGenerator produces realistic doubles teams and set scores for tests and demos.
type TeamGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTeamGenerator creates a generator with an optional seed. Without one it is time-seeded.
func NewTeamGenerator(seed ...int64) *TeamGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TeamGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

func (g *TeamGenerator) Seed() int64 {
	return g.seed
}

// GenerateTeams creates count two-player teams. No participant appears twice.
func (g *TeamGenerator) GenerateTeams(count int) []models.Team {
	used := make(map[models.ParticipantID]bool, 2*count)
	teams := make([]models.Team, 0, count)
	for len(teams) < count {
		a, b := g.participantID(used), g.participantID(used)
		teams = append(teams, models.MustTeam(a, b))
	}
	return teams
}

func (g *TeamGenerator) participantID(used map[models.ParticipantID]bool) models.ParticipantID {
	base := strings.ToLower(g.faker.FirstName() + "." + g.faker.LastName())
	id := models.ParticipantID(base)
	for used[id] {
		id = models.ParticipantID(base + g.faker.Numerify("##"))
	}
	used[id] = true
	return id
}

// GenerateSetScore returns a beach-tennis set result: the winner takes 6 games, the loser
// 0 to 4. Which side wins is random.
func (g *TeamGenerator) GenerateSetScore() (score1, score2 int) {
	loser := g.faker.Number(0, 4)
	if g.faker.Bool() {
		return 6, loser
	}
	return loser, 6
}
