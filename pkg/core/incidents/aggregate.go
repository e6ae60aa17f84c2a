package incidents

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
)

// Point is one map pin.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"`
	Kind      string  `json:"kind"`
}

// Summary is the result of folding one dataset.
type Summary struct {
	Dataset  Dataset
	Records  int
	Skipped  int
	Earliest string
	Latest   string
	Points   []Point

	tables map[Dimension]*FrequencyTable
}

func newSummary(ds Dataset) *Summary {
	s := &Summary{
		Dataset: ds,
		Points:  []Point{},
		tables:  make(map[Dimension]*FrequencyTable),
	}
	for _, d := range ds.Dimensions() {
		s.tables[d] = newFrequencyTable()
	}
	return s
}

// Table returns the frequency table for d, or nil if the dataset does not track d.
func (s *Summary) Table(d Dimension) *FrequencyTable {
	return s.tables[d]
}

// Ranked is shorthand for Table(d).Ranked(), returning nil for untracked dimensions.
func (s *Summary) Ranked(d Dimension) []Entry {
	t := s.tables[d]
	if t == nil {
		return nil
	}
	return t.Ranked()
}

func (s *Summary) observeDate(raw *string) string {
	if raw == nil || *raw == "" {
		return ""
	}
	date := NormalizeDate(*raw)
	if s.Earliest == "" || date < s.Earliest {
		s.Earliest = date
	}
	if s.Latest == "" || date > s.Latest {
		s.Latest = date
	}
	return date
}

func (s *Summary) tally(value func(Dimension) *string) {
	for d, t := range s.tables {
		if v := value(d); v != nil {
			t.Add(*v)
		}
	}
}

func (s *Summary) pin(loc *Location, date, kind string) {
	lat, lon, ok := loc.LatLon()
	if !ok {
		return
	}
	s.Points = append(s.Points, Point{Latitude: lat, Longitude: lon, Date: date, Kind: kind})
}

type summaryJSON struct {
	Dataset   Dataset            `json:"dataset"`
	Records   int                `json:"records"`
	Skipped   int                `json:"skipped"`
	TimeRange []string           `json:"time_range"`
	Tables    map[string][]Entry `json:"tables"`
	Points    []Point            `json:"points"`
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	out := summaryJSON{
		Dataset:   s.Dataset,
		Records:   s.Records,
		Skipped:   s.Skipped,
		TimeRange: []string{},
		Tables:    make(map[string][]Entry, len(s.tables)),
		Points:    s.Points,
	}
	if s.Records > 0 && s.Earliest != "" {
		out.TimeRange = []string{s.Earliest, s.Latest}
	}
	for d, t := range s.tables {
		out.Tables[d.String()] = t.Ranked()
	}
	return json.Marshal(out)
}

// AddGunfire folds one raw ShotSpotter record into s. It reports false when the record
// could not be decoded and was skipped.
func (s *Summary) AddGunfire(raw []byte) bool {
	var rec *GunfireRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		s.Skipped++
		return false
	}
	s.Records++
	date := s.observeDate(rec.Date)
	s.tally(rec.value)
	s.pin(rec.Location, date, rec.kind())
	return true
}

// AddViolence folds one raw violent-incident record into s.
func (s *Summary) AddViolence(raw []byte) bool {
	var rec *ViolenceRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		s.Skipped++
		return false
	}
	s.Records++
	date := s.observeDate(rec.Date)
	s.tally(rec.value)
	s.pin(rec.Location, date, string(Violence))
	return true
}

// AggregateGunfire folds every record of a ShotSpotter array.
func AggregateGunfire(records []json.RawMessage) *Summary {
	s := newSummary(Gunfire)
	for _, r := range records {
		s.AddGunfire(r)
	}
	return s
}

// AggregateViolence folds every record of a violent-incident array.
func AggregateViolence(records []json.RawMessage) *Summary {
	s := newSummary(Violence)
	for _, r := range records {
		s.AddViolence(r)
	}
	return s
}

// Aggregate dispatches on ds.
func Aggregate(ds Dataset, records []json.RawMessage) (*Summary, error) {
	switch ds {
	case Gunfire:
		return AggregateGunfire(records), nil
	case Violence:
		return AggregateViolence(records), nil
	default:
		return nil, fmt.Errorf("aggregate %q: unknown dataset", ds)
	}
}

// SplitArray decodes an upstream response body into its records. Anything other than
// a top-level JSON array is a malformed payload.
func SplitArray(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedPayload)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return records, nil
}
