package game

import (
	"errors"
	"testing"
)

// claim applies the roster rules to an in-memory game, mirroring what the
// transaction body does against the store.
func claim(g *Game, slot int, userID, displayName string) error {
	if err := validateClaim(g, slot, userID); err != nil {
		return err
	}
	g.Signups[slot] = &Signup{UserID: userID, DisplayName: displayName}
	return nil
}

func TestNewRoster(t *testing.T) {
	roster := NewRoster(4)
	if len(roster) != 4 {
		t.Fatalf("len(roster) = %d, want 4", len(roster))
	}
	for i, s := range roster {
		if s != nil {
			t.Errorf("slot %d should start open", i)
		}
	}
}

func TestValidateInput(t *testing.T) {
	court := CourtSnapshot{ID: 42, Latitude: 40.7, Longitude: -74.0, Name: "Rucker"}
	tests := []struct {
		name    string
		input   CreateInput
		wantErr bool
	}{
		{
			name:    "valid",
			input:   CreateInput{Court: court, Time: "Saturday 3pm", MaxPlayers: 6, SkillLevel: "Intermediate"},
			wantErr: false,
		},
		{
			name:    "no court selected",
			input:   CreateInput{Time: "Saturday 3pm", MaxPlayers: 6, SkillLevel: "Intermediate"},
			wantErr: true,
		},
		{
			name:    "missing time",
			input:   CreateInput{Court: court, MaxPlayers: 6, SkillLevel: "Intermediate"},
			wantErr: true,
		},
		{
			name:    "zero players",
			input:   CreateInput{Court: court, Time: "Saturday 3pm", SkillLevel: "Intermediate"},
			wantErr: true,
		},
		{
			name:    "negative players",
			input:   CreateInput{Court: court, Time: "Saturday 3pm", MaxPlayers: -2, SkillLevel: "Intermediate"},
			wantErr: true,
		},
		{
			name:    "missing skill level",
			input:   CreateInput{Court: court, Time: "Saturday 3pm", MaxPlayers: 6},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, InvalidInput) {
				t.Errorf("error %v should wrap InvalidInput", err)
			}
		})
	}
}

func TestValidateClaim(t *testing.T) {
	tests := []struct {
		name    string
		signups []*Signup
		slot    int
		userID  string
		want    error
	}{
		{
			name:    "open slot",
			signups: []*Signup{nil, nil},
			slot:    0,
			userID:  "a",
			want:    nil,
		},
		{
			name:    "slot taken",
			signups: []*Signup{{UserID: "b", DisplayName: "B"}, nil},
			slot:    0,
			userID:  "a",
			want:    SlotTaken,
		},
		{
			name:    "already signed up elsewhere",
			signups: []*Signup{{UserID: "a", DisplayName: "A"}, nil},
			slot:    1,
			userID:  "a",
			want:    AlreadySignedUp,
		},
		{
			name:    "slot index negative",
			signups: []*Signup{nil, nil},
			slot:    -1,
			userID:  "a",
			want:    InvalidSlot,
		},
		{
			name:    "slot index past roster",
			signups: []*Signup{nil, nil},
			slot:    2,
			userID:  "a",
			want:    InvalidSlot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{MaxPlayers: len(tt.signups), Signups: tt.signups}
			if err := validateClaim(g, tt.slot, tt.userID); !errors.Is(err, tt.want) {
				t.Errorf("validateClaim() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClaimSequence(t *testing.T) {
	g := &Game{MaxPlayers: 2, Signups: NewRoster(2)}

	if err := claim(g, 0, "userA", "A"); err != nil {
		t.Fatalf("A claiming slot 0: %v", err)
	}
	if g.Signups[0] == nil || g.Signups[0].UserID != "userA" {
		t.Fatalf("slot 0 not held by A: %+v", g.Signups)
	}
	if g.Signups[1] != nil {
		t.Fatal("slot 1 should still be open")
	}

	// A may not hold a second slot; the roster must be unchanged.
	if err := claim(g, 1, "userA", "A"); !errors.Is(err, AlreadySignedUp) {
		t.Fatalf("A claiming slot 1: error = %v, want AlreadySignedUp", err)
	}
	if g.Signups[1] != nil {
		t.Fatal("rejected claim mutated the roster")
	}

	if err := claim(g, 1, "userB", "B"); err != nil {
		t.Fatalf("B claiming slot 1: %v", err)
	}
	if g.Signups[0].UserID != "userA" || g.Signups[1].UserID != "userB" {
		t.Fatalf("roster = [%+v, %+v], want [A, B]", g.Signups[0], g.Signups[1])
	}

	// A filled slot is never overwritten.
	if err := claim(g, 1, "userC", "C"); !errors.Is(err, SlotTaken) {
		t.Fatalf("C claiming slot 1: error = %v, want SlotTaken", err)
	}
	if g.Signups[1].UserID != "userB" {
		t.Fatal("taken slot was overwritten")
	}

	if len(g.Signups) != g.MaxPlayers {
		t.Fatalf("len(signups) = %d, want %d", len(g.Signups), g.MaxPlayers)
	}
}
