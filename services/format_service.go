package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-bracket/models"
)

// normalizeFormat fills zero values with the defaults and rejects impossible settings.
func normalizeFormat(f models.Format) (models.Format, error) {
	def := models.DefaultFormat()
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		f.Name = def.Name
		if !f.GroupStage {
			f.Name = "knockout"
		}
	}
	if f.MaxPerGroup == 0 {
		f.MaxPerGroup = def.MaxPerGroup
	}
	if f.QualifiersPerGroup == 0 {
		f.QualifiersPerGroup = def.QualifiersPerGroup
	}
	if f.SeedingMode == "" {
		f.SeedingMode = def.SeedingMode
	}

	if f.MaxPerGroup < 2 {
		return f, fmt.Errorf("%w: max_per_group must be at least 2, got %d", ErrInvalidFormat, f.MaxPerGroup)
	}
	if f.QualifiersPerGroup < 1 {
		return f, fmt.Errorf("%w: qualifiers_per_group must be positive, got %d", ErrInvalidFormat, f.QualifiersPerGroup)
	}
	if !f.SeedingMode.Valid() {
		return f, fmt.Errorf("%w: unknown seeding_mode %q", ErrInvalidFormat, f.SeedingMode)
	}
	return f, nil
}
