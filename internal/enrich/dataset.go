package enrich

import (
	"sort"
	"time"
)

// Dataset is an ordered collection of enriched records. Filtering
// operations return subsequences that reference, never copy, the
// underlying records.
type Dataset []Activity

// FilterCategory returns records whose Type or SportType equals category.
func (d Dataset) FilterCategory(category string) Dataset {
	var out Dataset
	for _, a := range d {
		if a.Category(category) {
			out = append(out, a)
		}
	}
	return out
}

// MaxStartDate returns the most recent start date in the dataset.
// ok is false for an empty dataset.
func (d Dataset) MaxStartDate() (latest time.Time, ok bool) {
	for _, a := range d {
		if a.StartDate.After(latest) {
			latest = a.StartDate
		}
	}
	return latest, len(d) > 0
}

// RecentWindow selects the trailing weeks-long slice of the dataset,
// filtered to one category. The cutoff is anchored at the most recent
// record of the full dataset, and a record exactly on the cutoff is
// included. An empty result is valid: downstream stages report "no
// data" rather than failing.
func (d Dataset) RecentWindow(category string, weeks int) Dataset {
	if len(d) == 0 {
		return nil
	}
	if weeks < 1 {
		weeks = 1
	}

	latest, _ := d.MaxStartDate()
	cutoff := latest.AddDate(0, 0, -7*weeks)

	var window Dataset
	for _, a := range d {
		if a.Category(category) && !a.StartDate.Before(cutoff) {
			window = append(window, a)
		}
	}
	return window
}

// SortChronological orders the dataset by start date ascending, in place.
func (d Dataset) SortChronological() {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].StartDate.Before(d[j].StartDate)
	})
}

// DateSpan returns the earliest and latest start dates in the dataset.
func (d Dataset) DateSpan() (first, last time.Time, ok bool) {
	if len(d) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = d[0].StartDate, d[0].StartDate
	for _, a := range d[1:] {
		if a.StartDate.Before(first) {
			first = a.StartDate
		}
		if a.StartDate.After(last) {
			last = a.StartDate
		}
	}
	return first, last, true
}
