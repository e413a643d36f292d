package models

import (
	"encoding/json"
	"fmt"
)

type Stage string

const (
	StageGroup       Stage = "GROUP"
	StageElimination Stage = "ELIMINATION"
)

type Winner int

const (
	WinnerNone Winner = iota
	WinnerTeam1
	WinnerTeam2
)

func (w Winner) String() string {
	switch w {
	case WinnerTeam1:
		return "TEAM1"
	case WinnerTeam2:
		return "TEAM2"
	default:
		return "NONE"
	}
}

func (w Winner) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "TEAM1":
		*w = WinnerTeam1
	case "TEAM2":
		*w = WinnerTeam2
	case "NONE", "":
		*w = WinnerNone
	default:
		return fmt.Errorf("unknown winner %q", s)
	}
	return nil
}

type OccupantKind int

const (
	OccupantEmpty OccupantKind = iota
	OccupantTeam
	OccupantPlaceholder
)

func (k OccupantKind) String() string {
	switch k {
	case OccupantTeam:
		return "team"
	case OccupantPlaceholder:
		return "placeholder"
	default:
		return "empty"
	}
}

// MatchRef addresses a match inside the elimination bracket.
type MatchRef struct {
	Round    int `json:"round"`
	Position int `json:"position"`
}

// Occupant is what sits in one side of a match or in one bracket slot: nothing, a team,
// or the future winner of another match.
type Occupant struct {
	kind   OccupantKind
	team   Team
	source MatchRef
}

func EmptyOccupant() Occupant {
	return Occupant{kind: OccupantEmpty}
}

func TeamOccupant(t Team) Occupant {
	if t.IsZero() {
		return EmptyOccupant()
	}
	return Occupant{kind: OccupantTeam, team: t}
}

// PlaceholderOccupant stands for the winner of the match at (round, position).
func PlaceholderOccupant(round, position int) Occupant {
	return Occupant{kind: OccupantPlaceholder, source: MatchRef{Round: round, Position: position}}
}

func (o Occupant) Kind() OccupantKind { return o.kind }

func (o Occupant) Team() (Team, bool) {
	if o.kind != OccupantTeam {
		return Team{}, false
	}
	return o.team, true
}

func (o Occupant) Source() (MatchRef, bool) {
	if o.kind != OccupantPlaceholder {
		return MatchRef{}, false
	}
	return o.source, true
}

func (o Occupant) IsTeam() bool  { return o.kind == OccupantTeam }
func (o Occupant) IsEmpty() bool { return o.kind == OccupantEmpty }

func (o Occupant) Equals(other Occupant) bool {
	if o.kind != other.kind {
		return false
	}
	switch o.kind {
	case OccupantTeam:
		return o.team.Equals(other.team)
	case OccupantPlaceholder:
		return o.source == other.source
	default:
		return true
	}
}

func (o Occupant) String() string {
	switch o.kind {
	case OccupantTeam:
		return o.team.String()
	case OccupantPlaceholder:
		return fmt.Sprintf("winner of R%dM%d", o.source.Round, o.source.Position)
	default:
		return "-"
	}
}

type occupantJSON struct {
	Kind   string    `json:"kind"`
	Team   *Team     `json:"team,omitempty"`
	Source *MatchRef `json:"source,omitempty"`
}

func (o Occupant) MarshalJSON() ([]byte, error) {
	out := occupantJSON{Kind: o.kind.String()}
	switch o.kind {
	case OccupantTeam:
		t := o.team
		out.Team = &t
	case OccupantPlaceholder:
		src := o.source
		out.Source = &src
	}
	return json.Marshal(out)
}

func (o *Occupant) UnmarshalJSON(data []byte) error {
	var in occupantJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "team":
		if in.Team == nil || in.Team.IsZero() {
			return fmt.Errorf("%w: team occupant without players", ErrInvalidTeam)
		}
		*o = TeamOccupant(*in.Team)
	case "placeholder":
		if in.Source == nil {
			return fmt.Errorf("placeholder occupant without source match")
		}
		*o = PlaceholderOccupant(in.Source.Round, in.Source.Position)
	case "empty", "":
		*o = EmptyOccupant()
	default:
		return fmt.Errorf("unknown occupant kind %q", in.Kind)
	}
	return nil
}

// Match is a single game between two sides. Group matches use Round 0 and carry their
// GroupNumber; elimination matches use Round 1..n and GroupNumber 0.
type Match struct {
	ID          string   `json:"id"`
	Round       int      `json:"round"`
	Position    int      `json:"position"`
	Stage       Stage    `json:"stage"`
	GroupNumber int      `json:"group_number,omitempty"`
	Team1       Occupant `json:"team1"`
	Team2       Occupant `json:"team2"`
	Score1      *int     `json:"score1,omitempty"`
	Score2      *int     `json:"score2,omitempty"`
	Completed   bool     `json:"completed"`
	Winner      Winner   `json:"winner"`

	// Walkover marks a match completed automatically because one side was absent.
	Walkover bool `json:"walkover,omitempty"`
}

func (m Match) Ref() MatchRef {
	return MatchRef{Round: m.Round, Position: m.Position}
}

// Teams returns both sides when both are decided teams.
func (m Match) Teams() (Team, Team, bool) {
	t1, ok1 := m.Team1.Team()
	t2, ok2 := m.Team2.Team()
	return t1, t2, ok1 && ok2
}

func (m Match) WinnerTeam() (Team, bool) {
	if !m.Completed {
		return Team{}, false
	}
	switch m.Winner {
	case WinnerTeam1:
		return m.Team1.Team()
	case WinnerTeam2:
		return m.Team2.Team()
	default:
		return Team{}, false
	}
}

func (m Match) LoserTeam() (Team, bool) {
	if !m.Completed {
		return Team{}, false
	}
	switch m.Winner {
	case WinnerTeam1:
		return m.Team2.Team()
	case WinnerTeam2:
		return m.Team1.Team()
	default:
		return Team{}, false
	}
}

// Scores returns both scores when they are recorded.
func (m Match) Scores() (int, int, bool) {
	if m.Score1 == nil || m.Score2 == nil {
		return 0, 0, false
	}
	return *m.Score1, *m.Score2, true
}

// Involves reports whether t plays on either side.
func (m Match) Involves(t Team) bool {
	if t1, ok := m.Team1.Team(); ok && t1.Equals(t) {
		return true
	}
	if t2, ok := m.Team2.Team(); ok && t2.Equals(t) {
		return true
	}
	return false
}

func IntPtr(v int) *int {
	return &v
}
