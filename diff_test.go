package timeago

import (
	"testing"
	"time"
)

func catalog(t *testing.T, locale string) Catalog {
	t.Helper()
	c, err := New().Catalog(locale)
	assertNoError(t, err)
	return c
}

func TestDiffForHumans(t *testing.T) {
	for _, test := range []struct {
		locale   string
		iv       Interval
		opts     DiffOptions
		expected string
	}{
		{"en", Interval{Seconds: 1}, DiffOptions{}, "1 second ago"},
		{"en", Interval{Minutes: 5, Future: true}, DiffOptions{}, "5 minutes from now"},
		{"en", Interval{Years: 1, Months: 2, Days: 10}, DiffOptions{Parts: 3}, "1 year 2 months 1 week ago"},
		{"en", Interval{Days: 17}, DiffOptions{Parts: 2}, "2 weeks 3 days ago"},
		{"en", Interval{Hours: 3, Minutes: 4}, DiffOptions{Short: true, Parts: 2}, "3h 4m ago"},
		{"en", Interval{Years: 2}, DiffOptions{Short: true}, "2yrs ago"},
		{"en", Interval{Days: 3}, DiffOptions{Syntax: RelativeToOther}, "3 days before"},
		{"en", Interval{Days: 3, Future: true}, DiffOptions{Syntax: RelativeToOther}, "3 days after"},
		{"en", Interval{Hours: 2, Future: true}, DiffOptions{Syntax: Absolute}, "2 hours"},
		{"en", Interval{}, DiffOptions{}, "just now"},
		{"en", Interval{}, DiffOptions{Syntax: Absolute}, "0 seconds"},
		{"en", Interval{Days: 1}, DiffOptions{}, "yesterday"},
		{"en", Interval{Days: 1, Future: true}, DiffOptions{}, "tomorrow"},
		{"en", Interval{Days: 2}, DiffOptions{}, "before yesterday"},
		{"en", Interval{Days: 2, Future: true}, DiffOptions{}, "after tomorrow"},
		{"en", Interval{Days: 1}, DiffOptions{Syntax: RelativeToOther}, "1 day before"},
		{"en", Interval{Days: 1, Hours: 2}, DiffOptions{Parts: 2}, "1 day 2 hours ago"},
		{"fr", Interval{Seconds: 2}, DiffOptions{}, "il y a 2 secondes"},
		{"fr", Interval{Hours: 1, Future: true}, DiffOptions{}, "dans 1 heure"},
		{"fr", Interval{Days: 2}, DiffOptions{}, "avant-hier"},
		{"fr_CA", Interval{Years: 3}, DiffOptions{Short: true}, "il y a 3 a"},
		{"de", Interval{Minutes: 1, Future: true}, DiffOptions{}, "in 1 Minute"},
		{"ru", Interval{Days: 5}, DiffOptions{Syntax: Absolute}, "5 дней"},
		{"ru", Interval{Hours: 21}, DiffOptions{}, "21 час назад"},
		{"ru", Interval{Minutes: 3, Future: true}, DiffOptions{}, "через 3 минуты"},
		{"ar", Interval{Seconds: 2}, DiffOptions{}, "منذ ثانيتين"},
		{"ar", Interval{Seconds: 1}, DiffOptions{}, "منذ ثانية"},
		{"ar", Interval{Seconds: 5}, DiffOptions{}, "منذ 5 ثواني"},
		{"ar", Interval{Seconds: 30}, DiffOptions{}, "منذ 30 ثانية"},
		{"sr_ME", Interval{Seconds: 2}, DiffOptions{}, "prije 2 sekunde"},
		{"sr_ME", Interval{Seconds: 5}, DiffOptions{}, "prije 5 sekundi"},
		{"sr", Interval{Seconds: 21}, DiffOptions{}, "pre 21 sekundu"},
		{"zh_TW", Interval{Seconds: 2}, DiffOptions{}, "2秒前"},
		{"zh_TW", Interval{Hours: 2, Future: true}, DiffOptions{}, "2小時後"},
		{"ka", Interval{Days: 21, Future: true}, DiffOptions{}, "3 კვირაა"},
		{"ka", Interval{Hours: 5, Future: true}, DiffOptions{}, "5 საათში"},
		{"ka", Interval{Years: 1, Days: 14, Future: true}, DiffOptions{Parts: 2}, "1 წელი 2 კვირაა"},
		{"ka", Interval{Days: 21}, DiffOptions{}, "3 კვირა წინ"},
		{"ka", Interval{Days: 21, Future: true}, DiffOptions{Syntax: RelativeToOther}, "3 კვირა შემდეგ"},
		{"ka", Interval{Days: 1, Future: true}, DiffOptions{}, "ხვალ"},
	} {
		got := catalog(t, test.locale).DiffForHumans(test.iv, test.opts)
		if got != test.expected {
			t.Logf("%s: DiffForHumans(%+v, %+v) = %q, expected %q", test.locale, test.iv, test.opts, got, test.expected)
			t.Fail()
		}
	}
}

func TestDiffForHumansDefaults(t *testing.T) {
	tr := New()
	tr.SetMessages("xx", map[string]string{"hour": ":count hr"})
	c, err := tr.Catalog("xx")
	assertNoError(t, err)

	// units and wrappers missing everywhere use the English phrases, and
	// before falls back to ago
	assertEqual(t, "3 hr ago", c.DiffForHumans(Interval{Hours: 3}, DiffOptions{}))
	assertEqual(t, "2 days from now", c.DiffForHumans(Interval{Days: 2, Future: true}, DiffOptions{}))
	assertEqual(t, "4 minutes ago", c.DiffForHumans(Interval{Minutes: 4}, DiffOptions{Syntax: RelativeToOther}))

	// short names come from the locale, then its long names, then the
	// English short names
	assertEqual(t, "3 hr ago", c.DiffForHumans(Interval{Hours: 3}, DiffOptions{Short: true}))
	assertEqual(t, "3d ago", c.DiffForHumans(Interval{Days: 3}, DiffOptions{Short: true}))
	assertEqual(t, "2yrs 5m", c.DiffForHumans(Interval{Years: 2, Minutes: 5}, DiffOptions{Short: true, Parts: 2, Syntax: Absolute}))
}

func TestTranslate(t *testing.T) {
	c := catalog(t, "en")
	assertEqual(t, "1 day", c.Translate("day", 1, nil))
	assertEqual(t, "4 days", c.Translate("day", 4, nil))
	assertEqual(t, "7 days", c.Translate("day", 4, map[string]any{"count": 7}))
	assertEqual(t, "missing.key", c.Translate("missing.key", 1, nil))
	assertEqual(t, "every week", c.Translate("period_interval", 1, map[string]any{"interval": "week"}))
	assertEqual(t, "once", c.Translate("period_recurrences", 1, nil))
	assertEqual(t, "3 times", c.Translate("period_recurrences", 3, nil))
}

func TestInterpolate(t *testing.T) {
	assertEqual(t, "3 days ago", Interpolate(":time ago", map[string]any{"time": "3 days"}))
	assertEqual(t, "5 counters of 5", Interpolate(":counter counters of :count", map[string]any{"count": 5, "counter": "5"}))
	assertEqual(t, ":missing stays", Interpolate(":missing stays", map[string]any{"count": 1}))
	assertEqual(t, "no params", Interpolate("no params", nil))
	assertEqual(t, "at 2018-01-01", Interpolate("at :date", map[string]any{"date": stringer("2018-01-01")}))
	assertEqual(t, "1.5 hours", Interpolate(":count hours", map[string]any{"count": 1.5}))
}

type stringer string

func (s stringer) String() string {
	return string(s)
}

func TestBetween(t *testing.T) {
	utc := func(y int, m time.Month, d, h, min, s int) time.Time {
		return time.Date(y, m, d, h, min, s, 0, time.UTC)
	}
	for _, test := range []struct {
		date, reference time.Time
		expected        Interval
	}{
		{utc(2018, 1, 1, 0, 0, 0), utc(2018, 1, 4, 4, 0, 0), Interval{Days: 3, Hours: 4}},
		{utc(2018, 1, 4, 4, 0, 0), utc(2018, 1, 1, 0, 0, 0), Interval{Days: 3, Hours: 4, Future: true}},
		{utc(2018, 1, 31, 0, 0, 0), utc(2018, 3, 1, 0, 0, 0), Interval{Months: 1, Days: 1}},
		{utc(2017, 12, 31, 23, 59, 59), utc(2018, 1, 1, 0, 0, 1), Interval{Seconds: 2}},
		{utc(2016, 2, 29, 12, 0, 0), utc(2019, 2, 28, 11, 30, 0), Interval{Years: 2, Months: 11, Days: 27, Hours: 23, Minutes: 30}},
		{utc(2020, 5, 5, 5, 5, 5), utc(2020, 5, 5, 5, 5, 5), Interval{}},
	} {
		got := Between(test.date, test.reference)
		if got != test.expected {
			t.Logf("Between(%s, %s) = %+v, expected %+v", test.date, test.reference, got, test.expected)
			t.Fail()
		}
	}
	if !Between(time.Unix(0, 0), time.Unix(0, 0)).IsZero() {
		t.Error("difference between equal times is not zero")
	}
}

func TestCalendarNames(t *testing.T) {
	en := catalog(t, "en")
	assertEqual(t, "Monday", en.Weekday(time.Monday, false))
	assertEqual(t, "Mon", en.Weekday(time.Monday, true))
	assertEqual(t, "December", en.Month(time.December, false))
	assertEqual(t, "Dec", en.Month(time.December, true))

	fr := catalog(t, "fr")
	assertEqual(t, "mardi", fr.Weekday(time.Tuesday, false))
	assertEqual(t, "mar.", fr.Weekday(time.Tuesday, true))
	assertEqual(t, "août", fr.Month(time.August, false))

	// zh_TW overrides the short weekdays of zh
	zhTW := catalog(t, "zh_TW")
	assertEqual(t, "週六", zhTW.Weekday(time.Saturday, true))

	// ar has no short list and falls back to the long one
	ar := catalog(t, "ar")
	assertEqual(t, "السبت", ar.Weekday(time.Saturday, true))

	tr := New()
	tr.SetMessages("xx", map[string]string{})
	xx, err := tr.Catalog("xx")
	assertNoError(t, err)
	assertEqual(t, "Sunday", xx.Weekday(time.Sunday, false))
	assertEqual(t, "Feb", xx.Month(time.February, true))
}

func TestFirstDayOfWeek(t *testing.T) {
	for locale, expected := range map[string]time.Weekday{
		"en":    time.Sunday,
		"fr":    time.Monday,
		"fr_CA": time.Sunday,
		"ar":    time.Saturday,
		"zh_CN": time.Monday,
	} {
		if got := catalog(t, locale).FirstDayOfWeek(); got != expected {
			t.Errorf("%s starts weeks on %s, expected %s", locale, got, expected)
		}
	}

	tr := New()
	tr.SetMessages("ru", map[string]string{"first_day_of_week": "1"})
	ru, err := tr.Catalog("ru")
	assertNoError(t, err)
	if ru.FirstDayOfWeek() != time.Monday {
		t.Error("ru override of first_day_of_week ignored")
	}
}
