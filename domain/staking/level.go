package staking

// tetrahedral holds T(n) = n(n+1)(n+2)/6, closed by a sentinel no stake can reach
var tetrahedral = []uint64{
	1, 4, 10, 20, 35, 56, 84, 120, 165, 220,
	286, 364, 455, 560, 680, 816, 969, 1140, 1330, 1540,
	1771, 2024, 2300, 2600, 2925, 3276, 3654, 4060, 4505, 4990,
	5516, 6084, 6725, 7440, 8230, 9096, 99999999999,
}

// triangular holds the bonus paid per claim at each level, shorter than tetrahedral
var triangular = []uint64{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55,
	66, 78, 91, 105, 120, 136, 153, 171, 190, 210,
	231, 253, 276, 300, 325, 351, 378, 406,
}

const (
	// MaxStakeUnits is the largest whole-unit stake the level table can rank
	MaxStakeUnits = uint64(99999999998)
	// MaxLevel is the highest level Level can return
	MaxLevel = 36
	// MaxBonusLevel is the last level with its own bonus, higher levels share it
	MaxBonusLevel = 27
)

// LevelInfo summarizes where a stake sits in the level table
type LevelInfo struct {
	Level        int    `json:"level"`
	Bonus        uint64 `json:"bonus"`
	NextLevelGap uint64 `json:"nextLevelGap"`
}

// Level returns the smallest i with units < T[i]. Units beyond MaxStakeUnits stay at MaxLevel.
func Level(units uint64) int {
	for i, t := range tetrahedral {
		if units < t {
			return i
		}
	}
	return MaxLevel
}

// NextLevelGap is how many more whole units reach the next level, 0 once the table is exhausted
func NextLevelGap(units uint64) uint64 {
	t := tetrahedral[Level(units)]
	if units >= t {
		return 0
	}
	return t - units
}

// Bonus returns the triangular bonus of a level, clamped to the last bonus entry
func Bonus(level int) uint64 {
	switch {
	case level < 0:
		level = 0
	case level > MaxBonusLevel:
		level = MaxBonusLevel
	}
	return triangular[level]
}

// GetLevelInfo reports the bonus tier of units, so Level never passes MaxBonusLevel.
// NextLevelGap still measures against the full table.
func GetLevelInfo(units uint64) LevelInfo {
	lvl := Level(units)
	if lvl > MaxBonusLevel {
		lvl = MaxBonusLevel
	}
	return LevelInfo{
		Level:        lvl,
		Bonus:        Bonus(lvl),
		NextLevelGap: NextLevelGap(units),
	}
}
