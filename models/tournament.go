package models

// TournamentStatus is the lifecycle stage of a tournament.
type TournamentStatus string

const (
	StatusRegistration TournamentStatus = "registration"
	StatusGroupStage   TournamentStatus = "group_stage"
	StatusElimination  TournamentStatus = "elimination"
	StatusCompleted    TournamentStatus = "completed"
)

// Tournament is the whole state the engine works on. Services take one value and return
// the next one; nothing is shared between the two.
type Tournament struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Format       Format            `json:"format"`
	Status       TournamentStatus  `json:"status"`
	Teams        []Team            `json:"teams"`
	Groups       []Group           `json:"groups,omitempty"`
	GroupMatches []Match           `json:"group_matches,omitempty"`
	Qualifiers   []OverallStanding `json:"qualifiers,omitempty"`
	Bracket      *Bracket          `json:"bracket,omitempty"`
}

// Clone copies every slice so the result can be changed without touching t.
func (t Tournament) Clone() Tournament {
	out := t
	out.Teams = append([]Team(nil), t.Teams...)
	if t.Groups != nil {
		out.Groups = make([]Group, len(t.Groups))
		for i, g := range t.Groups {
			out.Groups[i] = Group{Number: g.Number, Teams: append([]Team(nil), g.Teams...)}
		}
	}
	out.GroupMatches = append([]Match(nil), t.GroupMatches...)
	out.Qualifiers = append([]OverallStanding(nil), t.Qualifiers...)
	if t.Bracket != nil {
		b := *t.Bracket
		b.Matches = append([]Match(nil), t.Bracket.Matches...)
		b.Slots = append([]BracketSlot(nil), t.Bracket.Slots...)
		out.Bracket = &b
	}
	return out
}
