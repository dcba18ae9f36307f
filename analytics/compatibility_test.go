package analytics

import (
	"fmt"
	"math"
	"testing"
)

func TestConnections(t *testing.T) {
	target := []ReviewSnapshot{
		review(100, "X", "RPG", [5]float64{8, 8, 8, 8, 8}, false),
		review(101, "Y", "RPG", [5]float64{4, 4, 4, 4, 4}, false),
	}

	tests := []struct {
		name   string
		target []ReviewSnapshot
		others []OwnedReview
		want   []CompatibilityEntry
	}{
		{
			name:   "empty target yields empty result",
			target: nil,
			others: []OwnedReview{{OwnerID: 2, GameID: 100, OverallScore: 8}},
			want:   []CompatibilityEntry{},
		},
		{
			name:   "no candidates yields empty result",
			target: target,
			others: nil,
			want:   []CompatibilityEntry{},
		},
		{
			name:   "identical ratings give 100 percent",
			target: target,
			others: []OwnedReview{
				{OwnerID: 2, Username: "twin", GameID: 100, OverallScore: 8},
				{OwnerID: 2, Username: "twin", GameID: 101, OverallScore: 4},
			},
			want: []CompatibilityEntry{
				{UserID: 2, Username: "twin", Compatibility: 100, Label: "100% Compatible"},
			},
		},
		{
			name:   "two point gap gives 80 percent",
			target: target,
			others: []OwnedReview{
				{OwnerID: 3, Username: "close", GameID: 100, OverallScore: 6},
			},
			want: []CompatibilityEntry{
				{UserID: 3, Username: "close", Compatibility: 80, Label: "80% Compatible"},
			},
		},
		{
			name:   "maximum gap clamps to zero and is filtered",
			target: []ReviewSnapshot{review(100, "X", "RPG", [5]float64{10, 10, 10, 10, 10}, false)},
			others: []OwnedReview{
				{OwnerID: 4, GameID: 100, OverallScore: 0},
			},
			want: []CompatibilityEntry{},
		},
		{
			name:   "exactly 50 percent does not pass the strict threshold",
			target: target,
			others: []OwnedReview{
				{OwnerID: 5, GameID: 100, OverallScore: 3}, // |8-3|*10 = 50
			},
			want: []CompatibilityEntry{},
		},
		{
			name:   "unshared games are ignored",
			target: target,
			others: []OwnedReview{
				{OwnerID: 6, Username: "partial", GameID: 100, OverallScore: 8},
				{OwnerID: 6, Username: "partial", GameID: 999, OverallScore: 0},
			},
			want: []CompatibilityEntry{
				{UserID: 6, Username: "partial", Compatibility: 100, Label: "100% Compatible"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Connections(tt.target, tt.others)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for i, entry := range got {
				want := tt.want[i]
				if entry.UserID != want.UserID {
					t.Errorf("entry[%d].UserID = %d, want %d", i, entry.UserID, want.UserID)
				}
				if math.Abs(entry.Compatibility-want.Compatibility) > 1e-9 {
					t.Errorf("entry[%d].Compatibility = %f, want %f", i, entry.Compatibility, want.Compatibility)
				}
				if entry.Label != want.Label {
					t.Errorf("entry[%d].Label = %q, want %q", i, entry.Label, want.Label)
				}
			}
		})
	}
}

func TestConnectionsOrderingAndCap(t *testing.T) {
	target := []ReviewSnapshot{review(100, "X", "RPG", [5]float64{10, 10, 10, 10, 10}, false)}

	// 15 candidates with scores 10.0, 9.9, 9.8, ... all above the threshold
	var others []OwnedReview
	for i := 0; i < 15; i++ {
		others = append(others, OwnedReview{
			OwnerID:      uint(i + 1),
			Username:     fmt.Sprintf("user%d", i+1),
			GameID:       100,
			OverallScore: 10 - float64(i)*0.1,
		})
	}

	got := Connections(target, others)
	if len(got) != 10 {
		t.Fatalf("got %d entries, want cap of 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Compatibility > got[i-1].Compatibility {
			t.Errorf("result not sorted descending at %d: %f > %f", i, got[i].Compatibility, got[i-1].Compatibility)
		}
	}
	if got[0].UserID != 1 {
		t.Errorf("best match UserID = %d, want 1", got[0].UserID)
	}
}

func TestConnectionsAveragesSharedGames(t *testing.T) {
	target := []ReviewSnapshot{
		review(100, "X", "RPG", [5]float64{8, 8, 8, 8, 8}, false),
		review(101, "Y", "RPG", [5]float64{4, 4, 4, 4, 4}, false),
	}
	// 100% on one game, 60% on the other -> 80% average
	others := []OwnedReview{
		{OwnerID: 7, GameID: 100, OverallScore: 8},
		{OwnerID: 7, GameID: 101, OverallScore: 8},
	}

	got := Connections(target, others)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if math.Abs(got[0].Compatibility-80) > 1e-9 {
		t.Errorf("Compatibility = %f, want 80", got[0].Compatibility)
	}
}
