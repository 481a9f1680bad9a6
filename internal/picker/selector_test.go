package picker

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmynk/dailypick/internal/calendar"
)

func TestNewSelectorValidation(t *testing.T) {
	start := calendar.MustParse("2026-02-11")
	tests := []struct {
		name      string
		roster    []string
		pickCount int
		start     calendar.Date
		wantErr   error
	}{
		{name: "valid", roster: abcd, pickCount: 2, start: start},
		{name: "pick whole roster", roster: abcd, pickCount: 4, start: start},
		{name: "empty roster", roster: nil, pickCount: 1, start: start, wantErr: ErrEmptyRoster},
		{name: "blank member", roster: []string{"A", " "}, pickCount: 1, start: start, wantErr: ErrBlankMember},
		{name: "duplicate member", roster: []string{"A", "B", "A"}, pickCount: 1, start: start, wantErr: ErrDuplicateMember},
		{name: "zero pick count", roster: abcd, pickCount: 0, start: start, wantErr: ErrInvalidPickCount},
		{name: "pick count exceeds roster", roster: abcd, pickCount: 5, start: start, wantErr: ErrPickCountExceedsRoster},
		{name: "missing start date", roster: abcd, pickCount: 2, wantErr: calendar.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewSelector(tt.roster, tt.start, tt.pickCount)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewSelector() error = %v, want %v", err, tt.wantErr)
				}
				if sel != nil {
					t.Error("expected nil selector on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSelector() unexpected error: %v", err)
			}
		})
	}
}

func TestSelectorOwnsRoster(t *testing.T) {
	roster := []string{"A", "B", "C", "D"}
	sel, err := NewSelector(roster, calendar.MustParse("2026-02-11"), 2)
	if err != nil {
		t.Fatalf("NewSelector failed: %v", err)
	}

	before := sel.Day(calendar.MustParse("2026-02-12"))
	roster[0] = "Z"
	after := sel.Day(calendar.MustParse("2026-02-12"))
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("changing the caller's slice changed the selection (-before +after):\n%s", diff)
	}

	got := sel.Roster()
	got[1] = "Y"
	if sel.Roster()[1] != "B" {
		t.Error("Roster() returned the internal slice")
	}
}

func TestSelectorAggregate(t *testing.T) {
	sel, err := NewSelector(abcd, calendar.MustParse("2026-02-11"), 2)
	if err != nil {
		t.Fatalf("NewSelector failed: %v", err)
	}

	tally, err := sel.Aggregate(calendar.MustParse("2026-02-13"))
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if tally.Total() != 6 {
		t.Errorf("Total = %d, want 6", tally.Total())
	}
	if diff := cmp.Diff([]string{"A", "B"}, tally.Today); diff != "" {
		t.Errorf("Today mismatch (-want +got):\n%s", diff)
	}

	_, err = sel.Aggregate(calendar.MustParse("2026-02-10"))
	if !errors.Is(err, ErrRangeInverted) {
		t.Errorf("Aggregate before start: error = %v, want ErrRangeInverted", err)
	}
}

func TestSelectorConcurrentUse(t *testing.T) {
	sel, err := NewSelector(tenNames, calendar.MustParse("2026-02-11"), 3)
	if err != nil {
		t.Fatalf("NewSelector failed: %v", err)
	}
	end := calendar.MustParse("2026-06-30")
	want, err := sel.Aggregate(end)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]Tally, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = sel.Aggregate(end)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("goroutine %d result differs (-want +got):\n%s", i, diff)
		}
	}
}
