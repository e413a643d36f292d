package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/tournament-bracket/config"
	"github.com/Dosada05/tournament-bracket/models"
	"github.com/Dosada05/tournament-bracket/services"
	"github.com/Dosada05/tournament-bracket/testutils"
)

var errNoTeams = errors.New("either --input or --generate is required")

func newApp(cfg *config.Config, logger *slog.Logger) *cli.App {
	return &cli.App{
		Name:  "bracketctl",
		Usage: "form groups and run doubles tournaments from the command line",
		Commands: []*cli.Command{
			{
				Name:  "groups",
				Usage: "draw groups and list the round-robin matches",
				Flags: commonFlags(cfg),
				Action: func(c *cli.Context) error {
					return run(c, cfg, logger, drawGroups)
				},
			},
			{
				Name:  "simulate",
				Usage: "play whole tournaments with random set scores",
				Flags: commonFlags(cfg),
				Action: func(c *cli.Context) error {
					return run(c, cfg, logger, simulate)
				},
			},
		},
	}
}

func commonFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "YAML file with divisions and teams"},
		&cli.IntFlag{Name: "generate", Aliases: []string{"g"}, Usage: "generate `N` demo teams per division instead of reading --input"},
		&cli.IntFlag{Name: "divisions", Value: 1, Usage: "number of generated divisions"},
		&cli.Uint64Flag{Name: "seed", Value: cfg.RNGSeed, Usage: "random seed, 0 for a time-based seed"},
		&cli.IntFlag{Name: "max-per-group", Value: cfg.Format.MaxPerGroup, Usage: "largest group size"},
		&cli.BoolFlag{Name: "auto-groups", Value: cfg.Format.AutoCalculateGroups, Usage: "size groups only by --max-per-group"},
		&cli.IntFlag{Name: "qualifiers", Value: cfg.Format.QualifiersPerGroup, Usage: "teams per group that reach the elimination stage"},
		&cli.StringFlag{Name: "seeding-mode", Value: string(cfg.Format.SeedingMode), Usage: "bye_first or seed_positions"},
		&cli.BoolFlag{Name: "avoid-same-group", Value: cfg.Format.AvoidSameGroup, Usage: "keep teams from one group apart in round 1"},
		&cli.BoolFlag{Name: "knockout-only", Usage: "skip the group stage and seed teams in listed order"},
	}
}

// divisionFunc runs one division with its own services.
type divisionFunc func(ctx context.Context, env divisionEnv, d division) (divisionResult, error)

type divisionEnv struct {
	name        string
	format      models.Format
	tournaments services.TournamentService
	matches     services.MatchService
	brackets    services.BracketService
	scores      *testutils.TeamGenerator
}

type divisionResult struct {
	Division     string                   `json:"division"`
	TournamentID string                   `json:"tournament_id"`
	Status       models.TournamentStatus  `json:"status"`
	Groups       []models.Group           `json:"groups,omitempty"`
	GroupMatches []models.Match           `json:"group_matches,omitempty"`
	Standings    []models.OverallStanding `json:"standings,omitempty"`
	Qualifiers   []models.OverallStanding `json:"qualifiers,omitempty"`
	Bracket      *models.Bracket          `json:"bracket,omitempty"`
	Champion     *models.Team             `json:"champion,omitempty"`
}

func run(c *cli.Context, cfg *config.Config, logger *slog.Logger, fn divisionFunc) error {
	format, err := formatFromFlags(c, cfg.Format)
	if err != nil {
		return err
	}

	seed := c.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	name := "bracketctl"
	var divisions []division
	switch {
	case c.String("input") != "":
		doc, err := loadDocument(c.String("input"))
		if err != nil {
			return err
		}
		if doc.Name != "" {
			name = doc.Name
		}
		if divisions, err = doc.divisions(); err != nil {
			return err
		}
	case c.Int("generate") > 0:
		gen := testutils.NewTeamGenerator(int64(seed))
		divisions = generatedDivisions(gen, max(c.Int("divisions"), 1), c.Int("generate"))
	default:
		return errNoTeams
	}

	logger.InfoContext(c.Context, "processing divisions",
		slog.String("tournament", name),
		slog.Int("divisions", len(divisions)),
		slog.Uint64("seed", seed),
	)

	results := make([]divisionResult, len(divisions))
	g, ctx := errgroup.WithContext(c.Context)
	for i, d := range divisions {
		divisionSeed := seed + uint64(i)
		divisionLogger := logger.With(slog.String("division", d.Name))
		env := divisionEnv{
			name:        name + " / " + d.Name,
			format:      format,
			tournaments: services.NewTournamentService(divisionLogger, rand.New(rand.NewPCG(divisionSeed, divisionSeed))),
			matches:     services.NewMatchService(divisionLogger),
			brackets:    services.NewBracketService(divisionLogger),
			scores:      testutils.NewTeamGenerator(int64(divisionSeed)),
		}
		g.Go(func() error {
			res, err := fn(ctx, env, d)
			if err != nil {
				return fmt.Errorf("division %q: %w", d.Name, err)
			}
			res.Division = d.Name
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatFromFlags(c *cli.Context, base models.Format) (models.Format, error) {
	f := base
	f.GroupStage = !c.Bool("knockout-only")
	f.MaxPerGroup = c.Int("max-per-group")
	f.AutoCalculateGroups = c.Bool("auto-groups")
	f.QualifiersPerGroup = c.Int("qualifiers")
	f.SeedingMode = models.SeedingMode(c.String("seeding-mode"))
	f.AvoidSameGroup = c.Bool("avoid-same-group")
	if !f.SeedingMode.Valid() {
		return f, fmt.Errorf("%w: unknown seeding mode %q", services.ErrInvalidFormat, f.SeedingMode)
	}
	if !f.GroupStage {
		f.Name = "knockout"
	}
	return f, nil
}

func drawGroups(ctx context.Context, env divisionEnv, d division) (divisionResult, error) {
	t, err := env.tournaments.CreateTournament(ctx, services.CreateTournamentInput{Name: env.name, Format: env.format, Teams: d.Teams})
	if err != nil {
		return divisionResult{}, err
	}
	if t, err = env.tournaments.StartGroupStage(ctx, t); err != nil {
		return divisionResult{}, err
	}
	return divisionResult{
		TournamentID: t.ID,
		Status:       t.Status,
		Groups:       t.Groups,
		GroupMatches: t.GroupMatches,
	}, nil
}

func simulate(ctx context.Context, env divisionEnv, d division) (divisionResult, error) {
	t, err := env.tournaments.CreateTournament(ctx, services.CreateTournamentInput{Name: env.name, Format: env.format, Teams: d.Teams})
	if err != nil {
		return divisionResult{}, err
	}

	res := divisionResult{TournamentID: t.ID}
	if t.Format.GroupStage {
		if t, err = env.tournaments.StartGroupStage(ctx, t); err != nil {
			return res, err
		}
		if t, err = playStage(ctx, env, t); err != nil {
			return res, err
		}
		if res.Standings, err = env.tournaments.OverallStandings(ctx, t); err != nil {
			return res, err
		}
	}

	if t, err = env.brackets.StartElimination(ctx, t); err != nil {
		return res, err
	}
	if t, err = playStage(ctx, env, t); err != nil {
		return res, err
	}
	champion, err := env.brackets.Champion(ctx, t)
	if err != nil {
		return res, err
	}

	res.Status = t.Status
	res.Groups = t.Groups
	res.GroupMatches = t.GroupMatches
	res.Qualifiers = t.Qualifiers
	res.Bracket = t.Bracket
	res.Champion = &champion
	return res, nil
}

// playStage records random set scores until the current stage has no playable match left.
func playStage(ctx context.Context, env divisionEnv, t models.Tournament) (models.Tournament, error) {
	for {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		playable := env.matches.PlayableMatches(ctx, t)
		if len(playable) == 0 {
			return t, nil
		}

		var err error
		s1, s2 := env.scores.GenerateSetScore()
		if t.Status == models.StatusGroupStage {
			t, err = env.matches.RecordGroupResult(ctx, t, playable[0].ID, s1, s2)
		} else {
			t, err = env.matches.RecordEliminationResult(ctx, t, playable[0].ID, s1, s2)
		}
		if err != nil {
			return t, err
		}
	}
}
