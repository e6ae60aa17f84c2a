package incidents

import (
	"time"
	_ "time/tzdata"
)

// DisplayLayout is the canonical date format. It is zero-padded and ordered from
// year to second, so comparing two formatted strings compares the instants.
const DisplayLayout = "2006/01/02 15:04:05 MST"

// Socrata floating timestamps, with or without fractional seconds.
const socrataLayout = "2006-01-02T15:04:05.999999999"

var chicago = mustLoadLocation("America/Chicago")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// NormalizeDate reads raw as a UTC timestamp and renders it in Chicago time. Values
// that do not parse are returned unchanged.
func NormalizeDate(raw string) string {
	t, err := time.ParseInLocation(socrataLayout, raw, time.UTC)
	if err != nil {
		return raw
	}
	return t.In(chicago).Format(DisplayLayout)
}
