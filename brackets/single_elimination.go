package brackets

import (
	"context"
	"fmt"
	"math/bits"
	"slices"

	"github.com/Dosada05/tournament-bracket/models"
)

// EliminationMatchID is the stable id of the match at (round, position).
func EliminationMatchID(round, position int) string {
	return fmt.Sprintf("R%dM%d", round, position)
}

// ByeFirstGenerator gives the byes to the best qualifiers and pairs the others
// best-vs-worst, avoiding teams from the same group.
type ByeFirstGenerator struct{}

func NewByeFirstGenerator() BracketGenerator {
	return &ByeFirstGenerator{}
}

func (g *ByeFirstGenerator) GetName() string {
	return "ByeFirst"
}

func (g *ByeFirstGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.Bracket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entrants, err := entrantsFrom(params.Qualifiers)
	if err != nil {
		return nil, err
	}

	n := len(entrants)
	size := BracketSize(n)
	byes := size - n

	// A unit is what one round-1 pair of slots holds: a bye team alone or two opponents.
	type unit struct {
		top    entrant
		bottom *entrant
	}
	units := make([]unit, 0, size/2)
	for _, e := range entrants[:byes] {
		units = append(units, unit{top: e})
	}
	for _, p := range pairBestVsWorst(entrants[byes:]) {
		bottom := p[1]
		units = append(units, unit{top: p[0], bottom: &bottom})
	}
	slices.SortStableFunc(units, func(a, b unit) int { return a.top.seed - b.top.seed })

	slots := make([]models.BracketSlot, size)
	for k, rank := range SeedOrder(size / 2) {
		u := units[rank-1]
		slots[2*k] = u.top.slot(2 * k)
		if u.bottom != nil {
			slots[2*k+1] = u.bottom.slot(2*k + 1)
		} else {
			slots[2*k+1] = emptySlot(2*k + 1)
		}
	}

	strategy := "no byes needed"
	if byes > 0 {
		strategy = fmt.Sprintf("top %d seeds advance directly to round 2; remaining %d teams play round 1 best-vs-worst", byes, n-byes)
	}
	return finishBracket(slots, n, g.GetName(), strategy, params.AvoidSameGroup)
}

// SeedPositionGenerator places every qualifier on its canonical seed slot. Empty slots
// face the top seeds, so those seeds get the byes.
type SeedPositionGenerator struct{}

func NewSeedPositionGenerator() BracketGenerator {
	return &SeedPositionGenerator{}
}

func (g *SeedPositionGenerator) GetName() string {
	return "SeedPositions"
}

func (g *SeedPositionGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.Bracket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entrants, err := entrantsFrom(params.Qualifiers)
	if err != nil {
		return nil, err
	}

	n := len(entrants)
	size := BracketSize(n)
	slots := make([]models.BracketSlot, size)
	for i, seed := range SeedOrder(size) {
		if seed <= n {
			slots[i] = entrants[seed-1].slot(i)
		} else {
			slots[i] = emptySlot(i)
		}
	}

	strategy := "no byes needed"
	if byes := size - n; byes > 0 {
		strategy = fmt.Sprintf("byes fill seed positions %d-%d, opposite seeds 1-%d", n+1, size, byes)
	}
	return finishBracket(slots, n, g.GetName(), strategy, params.AvoidSameGroup)
}

func finishBracket(slots []models.BracketSlot, teams int, generator, strategy string, avoid bool) (*models.Bracket, error) {
	unresolved := 0
	if avoid {
		unresolved = avoidSameGroup(slots)
	}

	matches, err := MatchesFromSlots(slots)
	if err != nil {
		return nil, err
	}
	matches, err = ResolveWalkovers(matches)
	if err != nil {
		return nil, err
	}

	size := len(slots)
	return &models.Bracket{
		Matches: matches,
		Slots:   slots,
		Metadata: models.BracketMetadata{
			TotalTeams:          teams,
			BracketSize:         size,
			ByesNeeded:          size - teams,
			Rounds:              bits.TrailingZeros(uint(size)),
			ByeStrategy:         strategy,
			Generator:           generator,
			UnresolvedConflicts: unresolved,
		},
	}, nil
}

// MatchesFromSlots builds every elimination match for a slot layout. Slots are paired
// (0,1), (2,3), ... for round 1. A team facing an empty slot has a bye: no match is
// created and the team is written straight into its round-2 side. All later matches
// start as placeholders for the winners feeding them.
func MatchesFromSlots(slots []models.BracketSlot) ([]models.Match, error) {
	size := len(slots)
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: bracket size %d is not a power of two >= 2", ErrStructuralInconsistency, size)
	}

	matches := make([]models.Match, 0, size-1)
	feeds := make([]models.Occupant, size/2)
	for k := 0; k < size/2; k++ {
		a, b := slots[2*k].Occupant, slots[2*k+1].Occupant
		position := k + 1
		switch {
		case a.IsTeam() && b.IsTeam():
			matches = append(matches, newEliminationMatch(1, position, a, b))
			feeds[k] = models.PlaceholderOccupant(1, position)
		case a.IsTeam() && b.IsEmpty():
			feeds[k] = a
		case a.IsEmpty() && b.IsTeam():
			feeds[k] = b
		default:
			return nil, fmt.Errorf("%w: round 1 position %d has no team", ErrStructuralInconsistency, position)
		}
	}

	for round := 2; len(feeds) > 1; round++ {
		next := make([]models.Occupant, len(feeds)/2)
		for k := range next {
			position := k + 1
			matches = append(matches, newEliminationMatch(round, position, feeds[2*k], feeds[2*k+1]))
			next[k] = models.PlaceholderOccupant(round, position)
		}
		feeds = next
	}
	return matches, nil
}

func newEliminationMatch(round, position int, team1, team2 models.Occupant) models.Match {
	return models.Match{
		ID:       EliminationMatchID(round, position),
		Round:    round,
		Position: position,
		Stage:    models.StageElimination,
		Team1:    team1,
		Team2:    team2,
	}
}

// ResolveWalkovers completes, 1-0, every open elimination match where one side is a team
// and the other is empty, then advances the present team.
func ResolveWalkovers(matches []models.Match) ([]models.Match, error) {
	out := slices.Clone(matches)
	for i := range out {
		m := out[i]
		if m.Stage != models.StageElimination || m.Completed {
			continue
		}
		var winner models.Winner
		switch {
		case m.Team1.IsTeam() && m.Team2.IsEmpty():
			winner = models.WinnerTeam1
		case m.Team1.IsEmpty() && m.Team2.IsTeam():
			winner = models.WinnerTeam2
		default:
			continue
		}

		m.Completed = true
		m.Walkover = true
		m.Winner = winner
		if winner == models.WinnerTeam1 {
			m.Score1, m.Score2 = models.IntPtr(1), models.IntPtr(0)
		} else {
			m.Score1, m.Score2 = models.IntPtr(0), models.IntPtr(1)
		}
		out[i] = m

		var err error
		out, err = AdvanceWinner(out, m.ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
