package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/tournament-bracket/models"
)

type GenerateBracketParams struct {
	// Qualifiers ordered by OverallRank, strongest first.
	Qualifiers []models.OverallStanding
	// AvoidSameGroup runs the round-1 same-group swap pass after layout.
	AvoidSameGroup bool
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) (*models.Bracket, error)

	GetName() string
}

// NewBracketGenerator picks the generator for a seeding mode.
func NewBracketGenerator(mode models.SeedingMode) (BracketGenerator, error) {
	switch mode {
	case models.SeedingByeFirst, "":
		return NewByeFirstGenerator(), nil
	case models.SeedingPositions:
		return NewSeedPositionGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported seeding mode %q", ErrInvalidOptions, mode)
	}
}

// BuildBracket generates an elimination bracket with the generator for mode.
func BuildBracket(qualifiers []models.OverallStanding, mode models.SeedingMode, avoidSameGroup bool) (*models.Bracket, error) {
	gen, err := NewBracketGenerator(mode)
	if err != nil {
		return nil, err
	}
	return gen.GenerateBracket(context.Background(), GenerateBracketParams{
		Qualifiers:     qualifiers,
		AvoidSameGroup: avoidSameGroup,
	})
}
