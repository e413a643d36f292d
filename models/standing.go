package models

// HeadToHead is a team's record against one specific opponent.
type HeadToHead struct {
	Wins      int `json:"wins"`
	GamesWon  int `json:"games_won"`
	GamesLost int `json:"games_lost"`
}

func (h HeadToHead) GameDifference() int {
	return h.GamesWon - h.GamesLost
}

// GroupStanding is a derived view of one team inside a group. It is rebuilt from the
// match list on every request and never stored on its own.
type GroupStanding struct {
	Team           Team `json:"team"`
	GroupNumber    int  `json:"group_number,omitempty"`
	Rank           int  `json:"rank"`
	Wins           int  `json:"wins"`
	Losses         int  `json:"losses"`
	MatchesPlayed  int  `json:"matches_played"`
	GamesWon       int  `json:"games_won"`
	GamesLost      int  `json:"games_lost"`
	GameDifference int  `json:"game_difference"`

	// HeadToHead is keyed by the opponent's Team.Key().
	HeadToHead map[string]HeadToHead `json:"head_to_head,omitempty"`
}

// Against returns the direct record against opponent and whether they met.
func (s GroupStanding) Against(opponent Team) (HeadToHead, bool) {
	h, ok := s.HeadToHead[opponent.Key()]
	return h, ok
}

// OverallStanding is a GroupStanding lifted into a cross-group ranking.
type OverallStanding struct {
	GroupStanding
	GroupRank   int `json:"group_rank"`
	OverallRank int `json:"overall_rank"`
}
