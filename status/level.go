// Package status classifies memory pressure into severity levels.
// The thresholds are fixed: they are part of the monitor's contract,
// not configuration.
package status

// Level represents memory pressure severity.
type Level int

const (
	LevelNormal   Level = iota // Usage in the comfortable range
	LevelWarning               // Usage elevated, worth watching
	LevelCritical              // Usage critical, alarm raised
)

// String returns the human-readable name for a Level.
func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

const (
	// WarningThreshold is the memory percentage above which usage is
	// considered elevated.
	WarningThreshold = 70.0

	// CriticalThreshold is the memory percentage above which the critical
	// alarm is raised. The comparison is strictly greater-than: exactly
	// 90.0 is still LevelWarning.
	CriticalThreshold = 90.0
)

// Evaluate classifies a memory usage percentage. Both comparisons are
// strict, so values sitting exactly on a threshold stay in the lower band.
func Evaluate(memoryPct float64) Level {
	switch {
	case memoryPct > CriticalThreshold:
		return LevelCritical
	case memoryPct > WarningThreshold:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// IsCritical reports whether the given memory percentage raises the alarm.
// It is evaluated fresh from the latest sample every tick and never derived
// from history.
func IsCritical(memoryPct float64) bool {
	return memoryPct > CriticalThreshold
}
