package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidTeam = errors.New("invalid team")

// Team is an immutable list of one or two participants. A singleton team only exists as
// the transient odd-player-out of a pairing round.
type Team struct {
	players []ParticipantID
}

// NewTeam validates ids and builds a Team.
func NewTeam(ids ...ParticipantID) (Team, error) {
	if len(ids) == 0 || len(ids) > 2 {
		return Team{}, fmt.Errorf("%w: a team has 1 or 2 participants, got %d", ErrInvalidTeam, len(ids))
	}
	for _, id := range ids {
		if strings.TrimSpace(string(id)) == "" {
			return Team{}, fmt.Errorf("%w: empty participant id", ErrInvalidTeam)
		}
	}
	if len(ids) == 2 && ids[0] == ids[1] {
		return Team{}, fmt.Errorf("%w: participant %q listed twice", ErrInvalidTeam, ids[0])
	}
	return Team{players: slices.Clone(ids)}, nil
}

// MustTeam is NewTeam for literals known to be valid. It panics otherwise.
func MustTeam(ids ...ParticipantID) Team {
	t, err := NewTeam(ids...)
	if err != nil {
		panic(err)
	}
	return t
}

// Players returns the participants in registration order.
func (t Team) Players() []ParticipantID {
	return slices.Clone(t.players)
}

func (t Team) IsZero() bool {
	return len(t.players) == 0
}

// SortedIDs returns the participant ids in lexicographic order.
func (t Team) SortedIDs() []string {
	ids := make([]string, len(t.players))
	for i, p := range t.players {
		ids[i] = string(p)
	}
	slices.Sort(ids)
	return ids
}

// Key identifies the team by its participant set, so [a b] and [b a] share a key.
func (t Team) Key() string {
	return strings.Join(t.SortedIDs(), "/")
}

func (t Team) Equals(other Team) bool {
	return t.Key() == other.Key()
}

func (t Team) String() string {
	if t.IsZero() {
		return "<none>"
	}
	ids := make([]string, len(t.players))
	for i, p := range t.players {
		ids[i] = string(p)
	}
	return strings.Join(ids, " & ")
}

func (t Team) MarshalJSON() ([]byte, error) {
	if t.players == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.players)
}

func (t *Team) UnmarshalJSON(data []byte) error {
	var ids []ParticipantID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		*t = Team{}
		return nil
	}
	parsed, err := NewTeam(ids...)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CompareTeamIDs orders two teams by their sorted participant-id lists.
func CompareTeamIDs(a, b Team) int {
	return slices.Compare(a.SortedIDs(), b.SortedIDs())
}
