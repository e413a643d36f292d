package models

// Group is a round-robin pool identified by a 1-based number.
type Group struct {
	Number int    `json:"number"`
	Teams  []Team `json:"teams"`
}

func (g Group) Size() int {
	return len(g.Teams)
}

func (g Group) Contains(t Team) bool {
	for _, member := range g.Teams {
		if member.Equals(t) {
			return true
		}
	}
	return false
}
