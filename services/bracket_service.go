package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-bracket/brackets"
	"github.com/Dosada05/tournament-bracket/models"
)

type BracketService interface {
	// StartElimination selects the qualifiers and generates the elimination bracket. With a
	// group stage every group match must be played first; without one the registered teams
	// are seeded in registration order.
	StartElimination(ctx context.Context, t models.Tournament) (models.Tournament, error)
	Champion(ctx context.Context, t models.Tournament) (models.Team, error)
}

type bracketService struct {
	logger *slog.Logger
}

func NewBracketService(logger *slog.Logger) BracketService {
	return &bracketService{logger: logger}
}

func (s *bracketService) StartElimination(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	qualifiers, err := s.qualifiers(ctx, t)
	if err != nil {
		s.logger.WarnContext(ctx, "elimination not started", tournamentAttrs(t), slog.Any("error", err))
		return t, err
	}

	bracketGenerator, err := brackets.NewBracketGenerator(t.Format.SeedingMode)
	if err != nil {
		return t, err
	}
	params := brackets.GenerateBracketParams{
		Qualifiers:     qualifiers,
		AvoidSameGroup: t.Format.AvoidSameGroup,
	}
	bracket, err := bracketGenerator.GenerateBracket(ctx, params)
	if err != nil {
		return t, fmt.Errorf("failed to generate bracket for tournament %s: %w", t.ID, err)
	}

	next := t.Clone()
	next.Qualifiers = qualifiers
	next.Bracket = bracket
	if err := transition(&next, models.StatusElimination); err != nil {
		return t, err
	}

	meta := bracket.Metadata
	s.logger.InfoContext(ctx, "elimination bracket generated",
		tournamentAttrs(next),
		slog.String("generator", meta.Generator),
		slog.Int("qualifiers", meta.TotalTeams),
		slog.Int("bracket_size", meta.BracketSize),
		slog.Int("byes", meta.ByesNeeded),
		slog.Int("rounds", meta.Rounds),
		slog.Int("matches", len(bracket.Matches)),
	)
	if meta.UnresolvedConflicts > 0 {
		s.logger.WarnContext(ctx, "teams from the same group meet in round 1",
			tournamentAttrs(next), slog.Int("conflicts", meta.UnresolvedConflicts))
	}

	return next, nil
}

func (s *bracketService) qualifiers(ctx context.Context, t models.Tournament) ([]models.OverallStanding, error) {
	if !t.Format.GroupStage {
		if err := requireStatus(t, models.StatusRegistration); err != nil {
			return nil, err
		}
		return brackets.SeedTeams(t.Teams)
	}

	if err := requireStatus(t, models.StatusGroupStage); err != nil {
		return nil, err
	}
	pending := 0
	for _, m := range t.GroupMatches {
		if !m.Completed {
			pending++
		}
	}
	if pending > 0 {
		return nil, fmt.Errorf("%w: %d of %d matches left", ErrGroupStageIncomplete, pending, len(t.GroupMatches))
	}

	standings := brackets.StandingsByGroup(t.GroupMatches)
	qualifiers, err := brackets.SelectQualifiers(standings, t.Format.QualifiersPerGroup)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "qualifiers selected", tournamentAttrs(t), slog.Int("qualifiers", len(qualifiers)))
	return qualifiers, nil
}

func (s *bracketService) Champion(ctx context.Context, t models.Tournament) (models.Team, error) {
	if t.Bracket == nil {
		return models.Team{}, fmt.Errorf("%w: tournament %s has no bracket", ErrChampionNotDecided, t.ID)
	}
	champion, ok := brackets.Champion(t.Bracket.Matches)
	if !ok {
		return models.Team{}, fmt.Errorf("%w: tournament %s", ErrChampionNotDecided, t.ID)
	}
	return champion, nil
}
