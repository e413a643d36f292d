package models

// BracketSlot is one leaf position of the elimination tree. OriginGroup and
// OriginGroupRank only feed the seeding algorithm.
type BracketSlot struct {
	Index           int      `json:"index"`
	Occupant        Occupant `json:"occupant"`
	Seed            int      `json:"seed,omitempty"`
	OriginGroup     int      `json:"origin_group,omitempty"`
	OriginGroupRank int      `json:"origin_group_rank,omitempty"`
}

type BracketMetadata struct {
	TotalTeams          int    `json:"total_teams"`
	BracketSize         int    `json:"bracket_size"`
	ByesNeeded          int    `json:"byes_needed"`
	Rounds              int    `json:"rounds"`
	ByeStrategy         string `json:"bye_strategy"`
	Generator           string `json:"generator"`
	UnresolvedConflicts int    `json:"unresolved_conflicts"`
}

// Bracket is a generated elimination stage.
type Bracket struct {
	Matches  []Match         `json:"matches"`
	Slots    []BracketSlot   `json:"slots"`
	Metadata BracketMetadata `json:"metadata"`
}

// MatchAt finds the match at (round, position).
func (b Bracket) MatchAt(round, position int) (Match, bool) {
	for _, m := range b.Matches {
		if m.Round == round && m.Position == position {
			return m, true
		}
	}
	return Match{}, false
}
