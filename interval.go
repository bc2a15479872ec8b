package timeago

import "time"

// Interval is a calendar difference between two points in time. Its
// fields are magnitudes; Future tells the direction.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	// Future is set when the described date lies after its reference.
	Future bool
}

// IsZero reports whether every component of iv is zero.
func (iv Interval) IsZero() bool {
	return iv.Years == 0 && iv.Months == 0 && iv.Days == 0 &&
		iv.Hours == 0 && iv.Minutes == 0 && iv.Seconds == 0
}

// Between returns the calendar difference between date and reference.
// Components borrow from the next larger unit the way a wall clock does:
// from January 31 to March 1 is one month and one day.
func Between(date, reference time.Time) Interval {
	future := date.After(reference)
	from, to := date, reference.In(date.Location())
	if future {
		from, to = to, from
	}

	y1, m1, d1 := from.Date()
	h1, min1, s1 := from.Clock()
	y2, m2, d2 := to.Date()
	h2, min2, s2 := to.Clock()

	iv := Interval{
		Years:   y2 - y1,
		Months:  int(m2 - m1),
		Days:    d2 - d1,
		Hours:   h2 - h1,
		Minutes: min2 - min1,
		Seconds: s2 - s1,
		Future:  future,
	}
	if iv.Seconds < 0 {
		iv.Seconds += 60
		iv.Minutes--
	}
	if iv.Minutes < 0 {
		iv.Minutes += 60
		iv.Hours--
	}
	if iv.Hours < 0 {
		iv.Hours += 24
		iv.Days--
	}
	if iv.Days < 0 {
		// borrow the length of the earlier date's month
		iv.Days += time.Date(y1, m1+1, 0, 0, 0, 0, 0, time.UTC).Day()
		iv.Months--
	}
	if iv.Months < 0 {
		iv.Months += 12
		iv.Years--
	}
	return iv
}
