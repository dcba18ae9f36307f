package analytics

import (
	"math"
	"testing"
)

func review(gameID int, name, genre string, scores [5]float64, favorite bool) ReviewSnapshot {
	var total float64
	for _, s := range scores {
		total += s
	}
	return ReviewSnapshot{
		GameID:       gameID,
		GameName:     name,
		Genre:        genre,
		Scores:       scores,
		OverallScore: total / 5,
		IsFavorite:   favorite,
	}
}

func TestFavoriteGenre(t *testing.T) {
	tests := []struct {
		name    string
		reviews []ReviewSnapshot
		want    string
	}{
		{
			name:    "no reviews returns sentinel",
			reviews: nil,
			want:    "None",
		},
		{
			name: "most reviewed genre wins",
			reviews: []ReviewSnapshot{
				review(1, "A", "RPG", [5]float64{8, 8, 8, 8, 8}, false),
				review(2, "B", "RPG", [5]float64{2, 2, 2, 2, 2}, false),
				review(3, "C", "Racing", [5]float64{10, 10, 10, 10, 10}, false),
			},
			want: "RPG",
		},
		{
			name: "average score breaks count ties",
			reviews: []ReviewSnapshot{
				review(1, "A", "RPG", [5]float64{5, 5, 5, 5, 5}, false),
				review(2, "B", "Horror", [5]float64{9, 9, 9, 9, 9}, false),
			},
			want: "Horror",
		},
		{
			name: "empty genre counts as Other",
			reviews: []ReviewSnapshot{
				review(1, "A", "", [5]float64{5, 5, 5, 5, 5}, false),
				review(2, "B", "", [5]float64{6, 6, 6, 6, 6}, false),
				review(3, "C", "RPG", [5]float64{9, 9, 9, 9, 9}, false),
			},
			want: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FavoriteGenre(tt.reviews); got != tt.want {
				t.Errorf("FavoriteGenre() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalAverage(t *testing.T) {
	if got := GlobalAverage(nil); got != 0 {
		t.Errorf("GlobalAverage(empty) = %f, want 0", got)
	}

	reviews := []ReviewSnapshot{
		review(1, "A", "RPG", [5]float64{10, 10, 10, 10, 10}, false),
		review(2, "B", "RPG", [5]float64{2, 2, 2, 2, 2}, false),
	}
	if got := GlobalAverage(reviews); math.Abs(got-6.0) > 1e-9 {
		t.Errorf("GlobalAverage() = %f, want 6.0", got)
	}
}

func TestBestByAttribute(t *testing.T) {
	reviews := []ReviewSnapshot{
		review(1, "A", "RPG", [5]float64{7, 0, 5, 5, 5}, false),
		review(2, "B", "RPG", [5]float64{9, 8, 5, 5, 5}, false),
		review(3, "C", "RPG", [5]float64{3, 6, 5, 5, 5}, false),
		review(4, "D", "RPG", [5]float64{8, 4, 5, 5, 5}, false),
		review(5, "E", "RPG", [5]float64{1, 2, 5, 5, 5}, false),
	}

	best := BestByAttribute(reviews)

	gameplay := best["gameplay"]
	if len(gameplay) != 3 {
		t.Fatalf("gameplay leaderboard has %d entries, want 3", len(gameplay))
	}
	wantTitles := []string{"B", "D", "A"}
	for i, entry := range gameplay {
		if entry.Title != wantTitles[i] {
			t.Errorf("gameplay[%d] = %q, want %q", i, entry.Title, wantTitles[i])
		}
	}
	for i := 1; i < len(gameplay); i++ {
		if gameplay[i].Score > gameplay[i-1].Score {
			t.Errorf("gameplay leaderboard not descending at %d", i)
		}
	}

	// game A's graphics score is 0 and must not appear anywhere
	for _, entry := range best["graphics"] {
		if entry.Title == "A" {
			t.Error("zero-scored review appeared in graphics leaderboard")
		}
		if entry.Score == 0 {
			t.Error("zero score in graphics leaderboard")
		}
	}

	empty := BestByAttribute(nil)
	for _, attr := range Attributes {
		if len(empty[attr.String()]) != 0 {
			t.Errorf("empty input produced entries for %s", attr)
		}
	}
}

func TestSelectFavorites(t *testing.T) {
	tests := []struct {
		name    string
		reviews []ReviewSnapshot
		wantIDs []int
	}{
		{
			name:    "empty input",
			reviews: nil,
			wantIDs: []int{},
		},
		{
			name: "flagged favorites win over higher scores",
			reviews: []ReviewSnapshot{
				review(1, "A", "RPG", [5]float64{10, 10, 10, 10, 10}, false),
				review(2, "B", "RPG", [5]float64{4, 4, 4, 4, 4}, true),
			},
			wantIDs: []int{2},
		},
		{
			name: "no favorites falls back to top rated",
			reviews: []ReviewSnapshot{
				review(1, "A", "RPG", [5]float64{4, 4, 4, 4, 4}, false),
				review(2, "B", "RPG", [5]float64{9, 9, 9, 9, 9}, false),
				review(3, "C", "RPG", [5]float64{7, 7, 7, 7, 7}, false),
				review(4, "D", "RPG", [5]float64{8, 8, 8, 8, 8}, false),
			},
			wantIDs: []int{2, 4, 3},
		},
		{
			name: "at most three favorites",
			reviews: []ReviewSnapshot{
				review(1, "A", "RPG", [5]float64{5, 5, 5, 5, 5}, true),
				review(2, "B", "RPG", [5]float64{5, 5, 5, 5, 5}, true),
				review(3, "C", "RPG", [5]float64{5, 5, 5, 5, 5}, true),
				review(4, "D", "RPG", [5]float64{5, 5, 5, 5, 5}, true),
			},
			wantIDs: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectFavorites(tt.reviews)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d favorites, want %d", len(got), len(tt.wantIDs))
			}
			for i, r := range got {
				if r.GameID != tt.wantIDs[i] {
					t.Errorf("favorites[%d].GameID = %d, want %d", i, r.GameID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestAchievements(t *testing.T) {
	t.Run("zero reviews all neutral", func(t *testing.T) {
		got := Achievements(nil, UserSnapshot{Level: 1})
		for _, flag := range []string{"first_review", "five_reviews", "ten_reviews", "fps_king", "high_score", "perfect_game", "hater", "connected", "veteran"} {
			if got[flag] {
				t.Errorf("%s = true for empty input", flag)
			}
		}
	})

	t.Run("perfect and hater", func(t *testing.T) {
		reviews := []ReviewSnapshot{
			review(1, "A", "RPG", [5]float64{10, 10, 10, 10, 10}, true),
			review(2, "B", "RPG", [5]float64{2, 2, 2, 2, 2}, false),
		}
		got := Achievements(reviews, UserSnapshot{Level: 1})
		if !got["first_review"] {
			t.Error("first_review = false")
		}
		if !got["perfect_game"] {
			t.Error("perfect_game = false")
		}
		if !got["high_score"] {
			t.Error("high_score = false")
		}
		if !got["hater"] {
			t.Error("hater = false, overall 2.0 is below 3")
		}
		if got["five_reviews"] {
			t.Error("five_reviews = true with 2 reviews")
		}
	})

	t.Run("high score without perfection", func(t *testing.T) {
		reviews := []ReviewSnapshot{
			review(1, "A", "RPG", [5]float64{10, 5, 5, 5, 5}, false),
		}
		got := Achievements(reviews, UserSnapshot{})
		if !got["high_score"] {
			t.Error("high_score = false with one 10")
		}
		if got["perfect_game"] {
			t.Error("perfect_game = true without all tens")
		}
	})

	t.Run("fps king counts shooter genres", func(t *testing.T) {
		var reviews []ReviewSnapshot
		for i := 0; i < 20; i++ {
			genre := "Shooter"
			if i%2 == 0 {
				genre = "Tactical FPS"
			}
			reviews = append(reviews, review(i+1, "G", genre, [5]float64{5, 5, 5, 5, 5}, false))
		}
		if got := Achievements(reviews, UserSnapshot{}); !got["fps_king"] {
			t.Error("fps_king = false with 20 shooter reviews")
		}
	})

	t.Run("connected and veteran come from the user", func(t *testing.T) {
		got := Achievements(nil, UserSnapshot{Level: 5, PSNID: "someone"})
		if !got["connected"] {
			t.Error("connected = false with a PSN id")
		}
		if !got["veteran"] {
			t.Error("veteran = false at level 5")
		}
	})
}

func TestComputeProfileStats(t *testing.T) {
	reviews := []ReviewSnapshot{
		review(1, "Game A", "RPG", [5]float64{10, 10, 10, 10, 10}, true),
		review(2, "Game B", "RPG", [5]float64{2, 2, 2, 2, 2}, false),
	}

	stats := ComputeProfileStats(reviews, UserSnapshot{Level: 1})

	if stats.ReviewCount != 2 {
		t.Errorf("ReviewCount = %d, want 2", stats.ReviewCount)
	}
	if stats.FavoriteGenre != "RPG" {
		t.Errorf("FavoriteGenre = %q, want RPG", stats.FavoriteGenre)
	}
	if math.Abs(stats.GlobalAverage-6.0) > 1e-9 {
		t.Errorf("GlobalAverage = %f, want 6.0", stats.GlobalAverage)
	}
	if len(stats.TopFavorites) != 1 || stats.TopFavorites[0].GameID != 1 {
		t.Errorf("TopFavorites = %v, want only Game A", stats.TopFavorites)
	}
	if !stats.Achievements["perfect_game"] || !stats.Achievements["hater"] {
		t.Errorf("Achievements = %v, want perfect_game and hater", stats.Achievements)
	}
}
