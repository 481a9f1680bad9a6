package service

import (
	"errors"
	"testing"

	"github.com/mmynk/dailypick/internal/calendar"
	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/picker"
)

func TestNewRegistry(t *testing.T) {
	t.Run("default falls back to first roster", func(t *testing.T) {
		r, err := NewRegistry(testRosters(), "")
		if err != nil {
			t.Fatalf("NewRegistry failed: %v", err)
		}
		if r.DefaultName() != "standup" {
			t.Errorf("expected default 'standup', got '%s'", r.DefaultName())
		}
	})

	tests := []struct {
		name        string
		rosters     []*models.Roster
		defaultName string
		wantErr     error
	}{
		{
			name:        "unknown default",
			rosters:     testRosters(),
			defaultName: "missing",
			wantErr:     ErrUnknownRoster,
		},
		{
			name: "bad start date",
			rosters: []*models.Roster{
				{Name: "x", Members: []string{"A"}, StartDate: "2026/02/11", PickCount: 1},
			},
			wantErr: calendar.ErrInvalidDate,
		},
		{
			name: "duplicate member",
			rosters: []*models.Roster{
				{Name: "x", Members: []string{"A", "A"}, StartDate: "2026-02-11", PickCount: 1},
			},
			wantErr: picker.ErrDuplicateMember,
		},
		{
			name: "pick count too large",
			rosters: []*models.Roster{
				{Name: "x", Members: []string{"A", "B"}, StartDate: "2026-02-11", PickCount: 3},
			},
			wantErr: picker.ErrPickCountExceedsRoster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.rosters, tt.defaultName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		if _, err := NewRegistry(nil, ""); err == nil {
			t.Error("expected error for empty registry")
		}
	})

	t.Run("duplicate roster", func(t *testing.T) {
		rosters := append(testRosters(), testRosters()[0])
		if _, err := NewRegistry(rosters, ""); err == nil {
			t.Error("expected error for duplicate roster name")
		}
	})
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	input := testRosters()
	r, err := NewRegistry(input, "")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	// Mutating the input after registration must not leak in
	input[0].Members[0] = "Zed"

	got, _, err := r.Lookup("standup")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got.Members[0] != "A" {
		t.Errorf("registry shares input slice: got %s", got.Members[0])
	}

	// Nor must mutating a returned roster
	got.Members[1] = "Zed"
	again, _, _ := r.Lookup("standup")
	if again.Members[1] != "B" {
		t.Errorf("registry shares returned slice: got %s", again.Members[1])
	}
}

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	if codec.Name() != "json" {
		t.Errorf("expected codec name 'json', got '%s'", codec.Name())
	}

	var req GetDayRequest
	if err := codec.Unmarshal(nil, &req); err != nil {
		t.Fatalf("empty body should decode: %v", err)
	}
	if req != (GetDayRequest{}) {
		t.Errorf("expected zero request, got %+v", req)
	}

	if err := codec.Unmarshal([]byte(`{"roster":`), &req); err == nil {
		t.Error("expected error for truncated body")
	}

	data, err := codec.Marshal(&GetDayRequest{Roster: "standup"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"roster":"standup"}` {
		t.Errorf("unexpected encoding: %s", data)
	}
}
