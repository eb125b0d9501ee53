/*package optim1d holds small helpers shared by the optim1d command line tools.
The numerical routines themselves live in math/interpolate and math/minimize.
*/
package optim1d

import (
	"fmt"
	"time"
)

// Timed runs f and returns how long it took.
func Timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// FormatDuration formats d with a unit appropriate to its size.
func FormatDuration(d time.Duration) string {
	ns := d.Nanoseconds()
	switch {
	case ns < 1000:
		return fmt.Sprintf("%dns", ns)
	case ns < 1000*1000:
		return fmt.Sprintf("%.2fus", float64(ns)/1e3)
	case ns < 1000*1000*1000:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
