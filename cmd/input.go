package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/tournament-bracket/models"
	"github.com/Dosada05/tournament-bracket/testutils"
)

var errNoDivisions = errors.New("input has no divisions")

// document is the YAML input of bracketctl:
//
//	name: Summer Open
//	divisions:
//	  - name: Mixed
//	    teams:
//	      - [ana, bia]
//	      - [carl, dan]
type document struct {
	Name      string          `yaml:"name"`
	Divisions []divisionInput `yaml:"divisions"`
}

type divisionInput struct {
	Name  string     `yaml:"name"`
	Teams [][]string `yaml:"teams"`
}

type division struct {
	Name  string
	Teams []models.Team
}

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("failed to read input: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("failed to unmarshal input: %w", err)
	}
	if len(doc.Divisions) == 0 {
		return document{}, fmt.Errorf("%s: %w", path, errNoDivisions)
	}
	return doc, nil
}

func (d document) divisions() ([]division, error) {
	out := make([]division, 0, len(d.Divisions))
	for i, in := range d.Divisions {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = fmt.Sprintf("Division %d", i+1)
		}
		teams := make([]models.Team, 0, len(in.Teams))
		for j, players := range in.Teams {
			ids := make([]models.ParticipantID, len(players))
			for k, p := range players {
				ids[k] = models.ParticipantID(p)
			}
			team, err := models.NewTeam(ids...)
			if err != nil {
				return nil, fmt.Errorf("division %q team %d: %w", name, j+1, err)
			}
			teams = append(teams, team)
		}
		out = append(out, division{Name: name, Teams: teams})
	}
	return out, nil
}

// generatedDivisions builds demo divisions of teamsPer teams each.
func generatedDivisions(gen *testutils.TeamGenerator, count, teamsPer int) []division {
	out := make([]division, count)
	for i := range out {
		out[i] = division{
			Name:  fmt.Sprintf("Division %d", i+1),
			Teams: gen.GenerateTeams(teamsPer),
		}
	}
	return out
}
