package models

type SeedingMode string

const (
	// SeedingByeFirst hands byes to the best qualifiers and pairs the rest best-vs-worst.
	SeedingByeFirst SeedingMode = "bye_first"
	// SeedingPositions lays every qualifier on its canonical seed position.
	SeedingPositions SeedingMode = "seed_positions"
)

func (m SeedingMode) Valid() bool {
	return m == SeedingByeFirst || m == SeedingPositions
}

// Format holds the rules a tournament is played under.
type Format struct {
	Name                string      `json:"name" yaml:"name"`
	GroupStage          bool        `json:"group_stage" yaml:"group_stage"`
	MaxPerGroup         int         `json:"max_per_group" yaml:"max_per_group"`
	AutoCalculateGroups bool        `json:"auto_calculate_groups" yaml:"auto_calculate_groups"`
	QualifiersPerGroup  int         `json:"qualifiers_per_group" yaml:"qualifiers_per_group"`
	SeedingMode         SeedingMode `json:"seeding_mode" yaml:"seeding_mode"`
	AvoidSameGroup      bool        `json:"avoid_same_group" yaml:"avoid_same_group"`
}

// DefaultFormat is the official beach-tennis layout: groups of 3-4, top two advance.
func DefaultFormat() Format {
	return Format{
		Name:               "groups+knockout",
		GroupStage:         true,
		MaxPerGroup:        4,
		QualifiersPerGroup: 2,
		SeedingMode:        SeedingByeFirst,
		AvoidSameGroup:     true,
	}
}
