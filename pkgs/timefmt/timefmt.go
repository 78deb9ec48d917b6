package timefmt

import (
	"math"
	"strconv"
	"time"
)

// timeNow is swapped out by tests
var timeNow = time.Now

////////////////////////////////////////////////////////////////////////////////

// Elapsed renders a timestamp for display. Within hourThreshold hours of now it
// returns the rounded hour count followed by suffix ("3h", "3 hours ago");
// otherwise it returns the day of month and the three-letter English month,
// without a year.
//
// A zero timestamp is not treated specially: it falls through to the date
// branch and renders as "1 Jan".
func Elapsed(ts time.Time, hourThreshold int, suffix string) string {
	elapsed := timeNow().Sub(ts).Hours()
	hours := int(math.Round(math.Abs(elapsed)))

	if hours <= hourThreshold {
		return strconv.Itoa(hours) + suffix
	}
	return ts.Format("2 Jan")
}
