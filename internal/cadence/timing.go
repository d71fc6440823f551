package cadence

import "time"

// Fixed contact hours for non-phone channels.
const (
	emailHour    = 8  // morning, for inbox visibility
	inPersonHour = 10 // mid-morning walk-in
	socialHour   = 12 // midday engagement hour for DMs and everything else
)

// CallWindow is a same-day hour range [Start, End) considered a good time
// to phone a business.
type CallWindow struct {
	Start int
	End   int
}

// callWindows holds the best phone windows per business type, ascending
// within a day.
var callWindows = map[BusinessType][]CallWindow{
	BusinessTypeRestaurantRetail:     {{14, 17}},           // between lunch and dinner service
	BusinessTypeProfessionalServices: {{10, 12}, {14, 16}}, // mid-morning, mid-afternoon
	BusinessTypeHomeServices:         {{7, 9}, {16, 18}},   // before and after job-site hours
	BusinessTypeCreator:              {{11, 14}},
	BusinessTypeGeneral:              {{9, 17}},
}

// NextContactTime returns the next valid instant at or after ref to contact
// a business of the given type through the given channel. Pure: the
// reference instant is an explicit argument, the system clock is never
// read.
func NextContactTime(bt BusinessType, ch Channel, ref time.Time) time.Time {
	switch ch {
	case ChannelPhone:
		return nextCallWindow(bt, ref)
	case ChannelEmail:
		return NextWeekdayAt(ref, emailHour)
	case ChannelInPerson:
		return NextWeekdayAt(ref, inPersonHour)
	default:
		return NextWeekdayAt(ref, socialHour)
	}
}

// NextWeekdayAt advances t one day at a time past Saturday and Sunday, then
// pins it to the given hour with minutes and seconds zeroed. Idempotent:
// applying it to its own result is a no-op.
func NextWeekdayAt(t time.Time, hour int) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// nextCallWindow finds the next instant inside a phone window for the
// business type, starting the search at ref. An instant already inside a
// window is returned unchanged; otherwise the search advances window by
// window, crossing day boundaries and skipping weekends.
func nextCallWindow(bt BusinessType, ref time.Time) time.Time {
	windows, ok := callWindows[bt]
	if !ok {
		windows = callWindows[BusinessTypeGeneral]
	}

	t := ref
	// A fortnight is more than enough to clear any weekend.
	for day := 0; day < 14; day++ {
		if t.Weekday() != time.Saturday && t.Weekday() != time.Sunday {
			for _, w := range windows {
				start := time.Date(t.Year(), t.Month(), t.Day(), w.Start, 0, 0, 0, t.Location())
				end := time.Date(t.Year(), t.Month(), t.Day(), w.End, 0, 0, 0, t.Location())
				if !t.Before(start) && t.Before(end) {
					return t
				}
				if t.Before(start) {
					return start
				}
			}
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	}
	return t
}
