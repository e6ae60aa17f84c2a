package incidents

import (
	"cmp"
	"slices"
)

// Entry is one ranked row of a frequency table.
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FrequencyTable counts occurrences per label.
type FrequencyTable struct {
	counts map[string]int
	total  int
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add increments label by one, creating it at one if absent.
func (t *FrequencyTable) Add(label string) {
	t.counts[label]++
	t.total++
}

// Count returns the occurrences recorded for label.
func (t *FrequencyTable) Count(label string) int {
	return t.counts[label]
}

// Total is the sum of all counts.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Len is the number of distinct labels.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Ranked returns the table sorted by count descending. Equal counts are ordered by
// label so the output is a pure function of the input.
func (t *FrequencyTable) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for label, count := range t.counts {
		entries = append(entries, Entry{Label: label, Count: count})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return entries
}
