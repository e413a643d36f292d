package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Dosada05/tournament-bracket/brackets"
	"github.com/Dosada05/tournament-bracket/models"
)

type CreateTournamentInput struct {
	Name   string        `json:"name"`
	Format models.Format `json:"format"`
	// Teams in registration order. Knockout-only tournaments seed in this order.
	Teams []models.Team `json:"teams"`
}

// TournamentService owns registration and the group stage. Every method takes the current
// tournament by value and returns the next state; the argument is never modified.
type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (models.Tournament, error)
	StartGroupStage(ctx context.Context, t models.Tournament) (models.Tournament, error)
	GroupStandings(ctx context.Context, t models.Tournament) (map[int][]models.GroupStanding, error)
	OverallStandings(ctx context.Context, t models.Tournament) ([]models.OverallStanding, error)
}

type tournamentService struct {
	logger   *slog.Logger
	shuffler brackets.Shuffler
}

// NewTournamentService wires the group-stage lifecycle. A nil shuffler draws groups from the
// global random source. *rand.Rand is not safe for concurrent use, so a service built with
// one must not be shared between goroutines.
func NewTournamentService(logger *slog.Logger, shuffler brackets.Shuffler) TournamentService {
	return &tournamentService{
		logger:   logger,
		shuffler: shuffler,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Tournament{}, ErrTournamentNameRequired
	}

	format, err := normalizeFormat(input.Format)
	if err != nil {
		s.logger.WarnContext(ctx, "tournament rejected", slog.String("name", name), slog.Any("error", err))
		return models.Tournament{}, err
	}
	if err := validateTeams(input.Teams); err != nil {
		s.logger.WarnContext(ctx, "tournament rejected", slog.String("name", name), slog.Any("error", err))
		return models.Tournament{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	t := models.Tournament{
		ID:     uuid.NewString(),
		Name:   name,
		Format: format,
		Status: models.StatusRegistration,
		Teams:  append([]models.Team(nil), input.Teams...),
	}
	s.logger.InfoContext(ctx, "tournament created",
		tournamentAttrs(t),
		slog.Int("teams", len(t.Teams)),
		slog.Bool("group_stage", format.GroupStage),
		slog.String("seeding_mode", string(format.SeedingMode)),
	)
	return t, nil
}

func (s *tournamentService) StartGroupStage(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	if !t.Format.GroupStage {
		return t, fmt.Errorf("%w: format %q has no group stage", ErrWrongStage, t.Format.Name)
	}
	if err := requireStatus(t, models.StatusRegistration); err != nil {
		return t, err
	}
	if len(t.Teams) < 2 {
		s.logger.WarnContext(ctx, "group stage not started", tournamentAttrs(t), slog.Int("teams", len(t.Teams)))
		return t, fmt.Errorf("%w: tournament %s has %d", brackets.ErrInsufficientTeams, t.ID, len(t.Teams))
	}

	next := t.Clone()
	next.Groups = brackets.FormGroups(next.Teams, brackets.GroupOptions{
		MaxPerGroup:   next.Format.MaxPerGroup,
		AutoCalculate: next.Format.AutoCalculateGroups,
	}, s.shuffler)
	next.GroupMatches = brackets.GenerateGroupMatches(next.Groups)
	if err := transition(&next, models.StatusGroupStage); err != nil {
		return t, err
	}

	s.logger.InfoContext(ctx, "group stage started",
		tournamentAttrs(next),
		slog.Int("groups", len(next.Groups)),
		slog.Int("matches", len(next.GroupMatches)),
	)
	return next, nil
}

func (s *tournamentService) GroupStandings(ctx context.Context, t models.Tournament) (map[int][]models.GroupStanding, error) {
	if len(t.Groups) == 0 {
		return nil, fmt.Errorf("%w: tournament %s has no groups", ErrWrongStage, t.ID)
	}
	return brackets.StandingsByGroup(t.GroupMatches), nil
}

func (s *tournamentService) OverallStandings(ctx context.Context, t models.Tournament) ([]models.OverallStanding, error) {
	if len(t.Groups) == 0 {
		return nil, fmt.Errorf("%w: tournament %s has no groups", ErrWrongStage, t.ID)
	}
	return brackets.ComputeOverallStandings(t.GroupMatches), nil
}
