// Package timetree groups journal entries into the year, month, and day
// hierarchy the outline renderer walks.
package timetree

import (
	"sort"
	"time"

	"github.com/chee/do2org/internal/dayone"
)

// Day holds the entries created on one calendar date, in journal order.
type Day struct {
	Entries []*dayone.Entry
}

// Month holds the days of one calendar month that have entries.
type Month struct {
	Days map[int]*Day
}

// Year holds the months of one calendar year that have entries.
type Year struct {
	Months map[time.Month]*Month
}

// Root is the top of the time tree. It is built once from a journal and
// read-only afterwards: a grouping of the journal's entries, not a second
// store of them.
type Root struct {
	Years map[int]*Year
}

// Build groups a journal's entries by their creation date in a single pass.
// Every entry lands in exactly one day bucket, buckets exist only for dates
// that have entries, and each day keeps its entries in journal order.
func Build(journal *dayone.Journal) *Root {
	root := &Root{Years: make(map[int]*Year)}
	for _, entry := range journal.Entries {
		root.add(entry)
	}
	return root
}

// add files one entry under its year, month, and day, creating buckets lazily.
func (r *Root) add(entry *dayone.Entry) {
	year, ok := r.Years[entry.Year()]
	if !ok {
		year = &Year{Months: make(map[time.Month]*Month)}
		r.Years[entry.Year()] = year
	}

	month, ok := year.Months[entry.Month()]
	if !ok {
		month = &Month{Days: make(map[int]*Day)}
		year.Months[entry.Month()] = month
	}

	day, ok := month.Days[entry.Day()]
	if !ok {
		day = &Day{}
		month.Days[entry.Day()] = day
	}

	day.Entries = append(day.Entries, entry)
}

// SortedYears returns the years that have entries, ascending.
func (r *Root) SortedYears() []int {
	years := make([]int, 0, len(r.Years))
	for y := range r.Years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// SortedMonths returns the months that have entries, ascending.
func (y *Year) SortedMonths() []time.Month {
	months := make([]time.Month, 0, len(y.Months))
	for m := range y.Months {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months
}

// SortedDays returns the days that have entries, ascending.
func (m *Month) SortedDays() []int {
	days := make([]int, 0, len(m.Days))
	for d := range m.Days {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// EntryCount walks the tree and counts every bucketed entry.
func (r *Root) EntryCount() int {
	count := 0
	for _, year := range r.Years {
		for _, month := range year.Months {
			for _, day := range month.Days {
				count += len(day.Entries)
			}
		}
	}
	return count
}
