package format

import "fmt"

// byteUnits holds IEC unit suffixes from bytes up to tebibytes.
var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// Bytes renders a byte count as a human-readable IEC string, e.g. "14.2 GiB".
// Values below 1 KiB are shown without a fractional part.
func Bytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// Gibibytes renders a byte count in GiB with one decimal place, matching the
// totals footer of the dashboard. Useful when a fixed unit is wanted for
// side-by-side comparison (total vs used).
func Gibibytes(n uint64) string {
	return fmt.Sprintf("%.1f GiB", float64(n)/(1024*1024*1024))
}
