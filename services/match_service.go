package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-bracket/brackets"
	"github.com/Dosada05/tournament-bracket/models"
)

type MatchService interface {
	RecordGroupResult(ctx context.Context, t models.Tournament, matchID string, score1, score2 int) (models.Tournament, error)
	// RecordEliminationResult advances the winner and completes the tournament after the final.
	RecordEliminationResult(ctx context.Context, t models.Tournament, matchID string, score1, score2 int) (models.Tournament, error)
	// PlayableMatches lists the matches of the current stage that have two teams and no result.
	PlayableMatches(ctx context.Context, t models.Tournament) []models.Match
}

type matchService struct {
	logger *slog.Logger
}

func NewMatchService(logger *slog.Logger) MatchService {
	return &matchService{logger: logger}
}

func (s *matchService) RecordGroupResult(ctx context.Context, t models.Tournament, matchID string, score1, score2 int) (models.Tournament, error) {
	if err := requireStatus(t, models.StatusGroupStage); err != nil {
		return t, err
	}

	matches, err := brackets.RecordResult(t.GroupMatches, matchID, score1, score2)
	if err != nil {
		s.logger.WarnContext(ctx, "group result rejected",
			tournamentAttrs(t), slog.String("match_id", matchID), slog.Any("error", err))
		return t, fmt.Errorf("group match %s: %w", matchID, err)
	}

	next := t.Clone()
	next.GroupMatches = matches
	s.logger.InfoContext(ctx, "group result recorded",
		tournamentAttrs(next),
		slog.String("match_id", matchID),
		slog.Int("score1", score1),
		slog.Int("score2", score2),
	)
	return next, nil
}

func (s *matchService) RecordEliminationResult(ctx context.Context, t models.Tournament, matchID string, score1, score2 int) (models.Tournament, error) {
	if err := requireStatus(t, models.StatusElimination); err != nil {
		return t, err
	}
	if t.Bracket == nil {
		return t, fmt.Errorf("%w: tournament %s has no bracket", brackets.ErrStructuralInconsistency, t.ID)
	}

	matches, err := brackets.RecordResult(t.Bracket.Matches, matchID, score1, score2)
	if err != nil {
		s.logger.WarnContext(ctx, "elimination result rejected",
			tournamentAttrs(t), slog.String("match_id", matchID), slog.Any("error", err))
		return t, fmt.Errorf("elimination match %s: %w", matchID, err)
	}

	next := t.Clone()
	next.Bracket.Matches = matches
	s.logger.InfoContext(ctx, "elimination result recorded",
		tournamentAttrs(next),
		slog.String("match_id", matchID),
		slog.Int("score1", score1),
		slog.Int("score2", score2),
	)

	if champion, ok := brackets.Champion(matches); ok {
		if err := transition(&next, models.StatusCompleted); err != nil {
			return t, err
		}
		s.logger.InfoContext(ctx, "tournament completed", tournamentAttrs(next), slog.String("champion", champion.String()))
	}
	return next, nil
}

func (s *matchService) PlayableMatches(ctx context.Context, t models.Tournament) []models.Match {
	var pool []models.Match
	switch t.Status {
	case models.StatusGroupStage:
		pool = t.GroupMatches
	case models.StatusElimination:
		if t.Bracket != nil {
			pool = t.Bracket.Matches
		}
	}

	playable := make([]models.Match, 0, len(pool))
	for _, m := range pool {
		if _, _, ok := m.Teams(); ok && !m.Completed {
			playable = append(playable, m)
		}
	}
	return playable
}
