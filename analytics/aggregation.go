package analytics

import (
	"sort"
	"strings"
)

// NoGenre substitutes for a missing genre, NoFavoriteGenre is the sentinel
// returned when the user has no reviews at all.
const (
	NoGenre         = "Other"
	NoFavoriteGenre = "None"
)

// AttributeEntry is one leaderboard row: a game and its score for one facet.
type AttributeEntry struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// ProfileStats is everything the profile page derives from a user's reviews.
type ProfileStats struct {
	ReviewCount     int                         `json:"reviewCount"`
	FavoriteGenre   string                      `json:"favoriteGenre"`
	GlobalAverage   float64                     `json:"globalAverage"`
	BestByAttribute map[string][]AttributeEntry `json:"bestByAttribute"`
	TopFavorites    []ReviewSnapshot            `json:"topFavorites"`
	Achievements    map[string]bool             `json:"achievements"`
}

// FavoriteGenre picks the genre the user reviews most. Genres tied on count
// are broken by the higher average overall score. Empty genres count as "Other",
// and a user with no reviews gets the "None" sentinel.
func FavoriteGenre(reviews []ReviewSnapshot) string {
	if len(reviews) == 0 {
		return NoFavoriteGenre
	}

	type genreAgg struct {
		count int
		total float64
	}
	byGenre := make(map[string]*genreAgg)
	order := make([]string, 0)
	for _, r := range reviews {
		g := r.Genre
		if g == "" {
			g = NoGenre
		}
		agg, ok := byGenre[g]
		if !ok {
			agg = &genreAgg{}
			byGenre[g] = agg
			order = append(order, g)
		}
		agg.count++
		agg.total += r.OverallScore
	}

	best := order[0]
	for _, g := range order[1:] {
		a, b := byGenre[g], byGenre[best]
		avgA := a.total / float64(a.count)
		avgB := b.total / float64(b.count)
		if a.count > b.count || (a.count == b.count && avgA > avgB) {
			best = g
		}
	}
	return best
}

// GlobalAverage is the mean overall score across all reviews, 0 when empty.
func GlobalAverage(reviews []ReviewSnapshot) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total float64
	for _, r := range reviews {
		total += r.OverallScore
	}
	return total / float64(len(reviews))
}

// BestByAttribute builds a top-3 leaderboard per facet. A score of exactly 0
// means the facet was not rated and is left out. Ties keep input order.
func BestByAttribute(reviews []ReviewSnapshot) map[string][]AttributeEntry {
	result := make(map[string][]AttributeEntry, len(Attributes))
	for _, attr := range Attributes {
		rated := make([]ReviewSnapshot, 0, len(reviews))
		for _, r := range reviews {
			if r.Scores[attr] != 0 {
				rated = append(rated, r)
			}
		}
		sort.SliceStable(rated, func(i, j int) bool {
			return rated[i].Scores[attr] > rated[j].Scores[attr]
		})
		if len(rated) > 3 {
			rated = rated[:3]
		}
		entries := make([]AttributeEntry, 0, len(rated))
		for _, r := range rated {
			entries = append(entries, AttributeEntry{Title: r.GameName, Score: r.Scores[attr]})
		}
		result[attr.String()] = entries
	}
	return result
}

// SelectFavorites returns up to 3 showcase reviews: the explicitly flagged
// favorites when there are any, otherwise the highest rated overall.
func SelectFavorites(reviews []ReviewSnapshot) []ReviewSnapshot {
	favorites := make([]ReviewSnapshot, 0, 3)
	for _, r := range reviews {
		if r.IsFavorite {
			favorites = append(favorites, r)
			if len(favorites) == 3 {
				return favorites
			}
		}
	}
	if len(favorites) > 0 {
		return favorites
	}

	byScore := make([]ReviewSnapshot, len(reviews))
	copy(byScore, reviews)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].OverallScore > byScore[j].OverallScore
	})
	if len(byScore) > 3 {
		byScore = byScore[:3]
	}
	return byScore
}

// Achievements evaluates every achievement flag against the review set.
func Achievements(reviews []ReviewSnapshot, user UserSnapshot) map[string]bool {
	shooterCount := 0
	anyTen := false
	perfect := false
	hater := false
	for _, r := range reviews {
		if strings.Contains(r.Genre, "Shooter") || strings.Contains(r.Genre, "FPS") {
			shooterCount++
		}
		allTen := true
		for _, attr := range Attributes {
			if r.Scores[attr] == 10 {
				anyTen = true
			} else {
				allTen = false
			}
		}
		if allTen {
			perfect = true
		}
		if r.OverallScore < 3 {
			hater = true
		}
	}

	connected := user.SteamID != "" || user.XboxID != "" || user.PSNID != "" || user.EpicID != ""

	return map[string]bool{
		"first_review": len(reviews) >= 1,
		"five_reviews": len(reviews) >= 5,
		"ten_reviews":  len(reviews) >= 10,
		"fps_king":     shooterCount >= 20,
		"high_score":   anyTen,
		"perfect_game": perfect,
		"hater":        hater,
		"connected":    connected,
		"veteran":      user.Level >= 5,
	}
}

// ComputeProfileStats assembles the full profile block in one pass.
func ComputeProfileStats(reviews []ReviewSnapshot, user UserSnapshot) ProfileStats {
	return ProfileStats{
		ReviewCount:     len(reviews),
		FavoriteGenre:   FavoriteGenre(reviews),
		GlobalAverage:   GlobalAverage(reviews),
		BestByAttribute: BestByAttribute(reviews),
		TopFavorites:    SelectFavorites(reviews),
		Achievements:    Achievements(reviews, user),
	}
}
