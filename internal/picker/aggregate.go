package picker

import (
	"sort"

	"github.com/mmynk/dailypick/internal/calendar"
	"github.com/mmynk/dailypick/internal/models"
)

// Tally is the result of replaying every day in a range.
type Tally struct {
	// Start and End bound the replayed range, both inclusive.
	Start calendar.Date
	End   calendar.Date

	// Days is how many days were replayed (0 when Start is after End).
	Days int

	// Today is the selection for End.
	Today []string

	// Counts lists every roster member with the number of days they were
	// picked, highest first. Ties keep roster order.
	Counts []models.PersonCount
}

// Total returns the sum of all counts, which is Days × pickCount for a valid
// configuration.
func (t Tally) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c.Count
	}
	return total
}

// Aggregate recomputes the selection of every day from start through end and
// counts how often each roster member was picked.
//
// History is never stored: each call replays the whole range, so the cost is
// O(days × len(roster)). That recomputation is what keeps the system
// stateless.
func Aggregate(start, end calendar.Date, roster []string, pickCount int) Tally {
	index := make(map[string]int, len(roster))
	for i, name := range roster {
		index[name] = i
	}
	counts := make([]int, len(roster))

	tally := Tally{Start: start, End: end}
	if !start.After(end) {
		tally.Days = start.DaysUntil(end) + 1
	}
	for d := start; !d.After(end); d = d.Next() {
		picks := SelectForDate(d.String(), roster, pickCount)
		for _, name := range picks {
			counts[index[name]]++
		}
		if d.Equal(end) {
			tally.Today = picks
		}
	}
	if tally.Today == nil {
		tally.Today = []string{}
	}

	tally.Counts = rank(roster, counts)
	return tally
}

// rank pairs roster members with their counts and orders them by count
// descending, breaking ties by roster position.
func rank(roster []string, counts []int) []models.PersonCount {
	ranked := make([]models.PersonCount, len(roster))
	for i, name := range roster {
		ranked[i] = models.PersonCount{Name: name, Count: counts[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
