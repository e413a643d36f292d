package brackets

import (
	"math/rand/v2"

	"github.com/Dosada05/tournament-bracket/models"
)

// Official beach-tennis rule: every group has 3 or 4 teams.
const (
	minGroupSize     = 3
	officialMaxGroup = 4
)

// Shuffler is satisfied by *rand.Rand from both math/rand and math/rand/v2.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type GroupOptions struct {
	// MaxPerGroup caps the group size. Values below 1 mean the official 4.
	MaxPerGroup int
	// AutoCalculate lets MaxPerGroup go beyond the official 3-4 rule.
	AutoCalculate bool
}

// FormGroups shuffles teams and partitions them into numbered groups. A nil shuffler uses
// the global random source. The input slice is never reordered.
func FormGroups(teams []models.Team, opts GroupOptions, shuffler Shuffler) []models.Group {
	pool := append([]models.Team(nil), teams...)
	if shuffler == nil {
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	} else {
		shuffler.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	total := len(pool)
	switch {
	case total == 0:
		return []models.Group{}
	case total <= 4:
		return []models.Group{{Number: 1, Teams: pool}}
	case total == 5:
		return []models.Group{
			{Number: 1, Teams: pool[:3]},
			{Number: 2, Teams: pool[3:]},
		}
	}

	return distribute(pool, GroupCount(total, opts))
}

// GroupCount returns how many groups total teams are split into for totals of 6 and more.
func GroupCount(total int, opts GroupOptions) int {
	if total <= 5 {
		if total == 5 {
			return 2
		}
		if total == 0 {
			return 0
		}
		return 1
	}

	maxPerGroup := opts.MaxPerGroup
	if maxPerGroup < 1 {
		maxPerGroup = officialMaxGroup
	}

	if opts.AutoCalculate {
		if maxPerGroup < 2 {
			maxPerGroup = 2
		}
		return ceilDiv(total, maxPerGroup)
	}

	maxPerGroup = min(max(maxPerGroup, minGroupSize), officialMaxGroup)
	count := ceilDiv(total, maxPerGroup)
	// A cap of 3 can leave groups of 2; fall back to fewer, larger groups.
	if total/count < minGroupSize {
		count = total / minGroupSize
	}
	return count
}

func distribute(pool []models.Team, groupCount int) []models.Group {
	base := len(pool) / groupCount
	extra := len(pool) % groupCount

	groups := make([]models.Group, 0, groupCount)
	offset := 0
	for i := 0; i < groupCount; i++ {
		size := base
		if i < extra {
			size++
		}
		groups = append(groups, models.Group{
			Number: i + 1,
			Teams:  append([]models.Team(nil), pool[offset:offset+size]...),
		})
		offset += size
	}
	return groups
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
