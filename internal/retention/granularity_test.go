package retention

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func ts(year, month, day, hour, min, sec int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
}

func TestGranularity(t *testing.T) {
	Convey("Given the granularity catalog", t, func() {
		Convey("ParseGranularity", func() {
			Convey("It should recognize every tag", func() {
				tags := map[string]Granularity{
					"s":   Second,
					"min": Minute,
					"h":   Hour,
					"d":   Day,
					"w":   Week,
					"mon": Month,
					"y":   Year,
				}
				for tag, want := range tags {
					g, err := ParseGranularity(tag)
					So(err, ShouldBeNil)
					So(g, ShouldEqual, want)
				}
			})

			Convey("It should reject an unknown tag", func() {
				_, err := ParseGranularity("fortnight")
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrInvalidGranularity), ShouldBeTrue)
			})
		})

		Convey("BucketKey", func() {
			Convey("Seconds separate adjacent timestamps", func() {
				So(Second.BucketKey(ts(2018, 1, 2, 3, 4, 5)),
					ShouldNotEqual, Second.BucketKey(ts(2018, 1, 2, 3, 4, 6)))
			})

			Convey("Minutes bucket within the same minute", func() {
				So(Minute.BucketKey(ts(2018, 1, 2, 3, 4, 5)),
					ShouldEqual, Minute.BucketKey(ts(2018, 1, 2, 3, 4, 6)))
				So(Minute.BucketKey(ts(2018, 1, 2, 3, 4, 0)),
					ShouldNotEqual, Minute.BucketKey(ts(2018, 1, 2, 3, 5, 0)))
			})

			Convey("Hours bucket within the same hour", func() {
				So(Hour.BucketKey(ts(2018, 1, 2, 3, 4, 5)),
					ShouldEqual, Hour.BucketKey(ts(2018, 1, 2, 3, 45, 0)))
				So(Hour.BucketKey(ts(2018, 1, 2, 3, 4, 59)),
					ShouldNotEqual, Hour.BucketKey(ts(2018, 1, 2, 4, 4, 59)))
			})

			Convey("Days bucket within the same calendar date", func() {
				So(Day.BucketKey(ts(2018, 1, 2, 3, 0, 5)),
					ShouldEqual, Day.BucketKey(ts(2018, 1, 2, 23, 0, 4)))
				So(Day.BucketKey(ts(2018, 1, 2, 3, 4, 59)),
					ShouldNotEqual, Day.BucketKey(ts(2018, 1, 3, 3, 4, 59)))
			})

			Convey("Weeks follow the ISO-8601 year-week rule", func() {
				// 2008-12-29 is a Monday and already belongs to week 1 of 2009.
				So(Week.BucketKey(ts(2008, 12, 29, 3, 4, 5)),
					ShouldEqual, Week.BucketKey(ts(2008, 12, 30, 4, 5, 6)))
				So(Week.BucketKey(ts(2008, 12, 28, 0, 0, 0)),
					ShouldNotEqual, Week.BucketKey(ts(2008, 12, 29, 0, 0, 0)))
			})

			Convey("Months bucket within the same calendar month", func() {
				So(Month.BucketKey(ts(2009, 12, 29, 3, 4, 5)),
					ShouldEqual, Month.BucketKey(ts(2009, 12, 30, 4, 5, 6)))
				So(Month.BucketKey(ts(2009, 11, 29, 0, 0, 0)),
					ShouldNotEqual, Month.BucketKey(ts(2009, 12, 29, 0, 0, 0)))
			})

			Convey("Years bucket within the same calendar year", func() {
				So(Year.BucketKey(ts(2009, 11, 29, 3, 4, 5)),
					ShouldEqual, Year.BucketKey(ts(2009, 12, 30, 4, 5, 6)))
				So(Year.BucketKey(ts(2008, 12, 29, 0, 0, 0)),
					ShouldNotEqual, Year.BucketKey(ts(2009, 12, 29, 0, 0, 0)))
			})

			Convey("Keys are independent of the input timezone", func() {
				wib := time.FixedZone("WIB", 7*3600)
				local := time.Date(2018, 1, 2, 10, 4, 5, 0, wib) // 03:04:05 UTC
				So(Hour.BucketKey(local), ShouldEqual, Hour.BucketKey(ts(2018, 1, 2, 3, 4, 5)))
			})

			Convey("Equal timestamps produce equal keys at every granularity", func() {
				t1 := ts(2020, 6, 15, 12, 30, 45)
				t2 := ts(2020, 6, 15, 12, 30, 45)
				for _, g := range []Granularity{Second, Minute, Hour, Day, Week, Month, Year} {
					So(g.BucketKey(t1), ShouldEqual, g.BucketKey(t2))
				}
			})
		})
	})
}
