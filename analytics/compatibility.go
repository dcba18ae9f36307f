package analytics

import (
	"fmt"
	"math"
	"sort"
)

// Compatibility results are capped and filtered: only candidates strictly
// above the threshold are shown, at most maxConnections of them.
const (
	compatibilityThreshold = 50.0
	maxConnections         = 10
)

// CompatibilityEntry is one similar-taste user in the connections list.
type CompatibilityEntry struct {
	UserID        uint    `json:"userId"`
	Username      string  `json:"username"`
	AvatarURL     string  `json:"avatarUrl"`
	Compatibility float64 `json:"compatibility"`
	Label         string  `json:"label"`
}

// Connections scores every other user against the target's ratings. Each
// shared game contributes max(0, 100 - |delta|*10), the per-game scores are
// averaged per candidate, and only candidates above 50% make the list,
// best first, at most 10.
//
// others is expected to already be restricted to games the target has rated;
// rows outside that set are ignored here as well.
func Connections(target []ReviewSnapshot, others []OwnedReview) []CompatibilityEntry {
	if len(target) == 0 {
		return []CompatibilityEntry{}
	}

	targetScores := make(map[int]float64, len(target))
	for _, r := range target {
		targetScores[r.GameID] = r.OverallScore
	}

	type candidate struct {
		entry CompatibilityEntry
		total float64
		count int
	}
	byUser := make(map[uint]*candidate)
	order := make([]uint, 0)
	for _, other := range others {
		targetScore, shared := targetScores[other.GameID]
		if !shared {
			continue
		}
		c, ok := byUser[other.OwnerID]
		if !ok {
			c = &candidate{entry: CompatibilityEntry{
				UserID:    other.OwnerID,
				Username:  other.Username,
				AvatarURL: other.AvatarURL,
			}}
			byUser[other.OwnerID] = c
			order = append(order, other.OwnerID)
		}
		similarity := 100 - math.Abs(targetScore-other.OverallScore)*10
		if similarity < 0 {
			similarity = 0
		}
		c.total += similarity
		c.count++
	}

	entries := make([]CompatibilityEntry, 0, len(order))
	for _, id := range order {
		c := byUser[id]
		avg := c.total / float64(c.count)
		if avg <= compatibilityThreshold {
			continue
		}
		c.entry.Compatibility = avg
		c.entry.Label = fmt.Sprintf("%d%% Compatible", int(math.Round(avg)))
		entries = append(entries, c.entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Compatibility > entries[j].Compatibility
	})
	if len(entries) > maxConnections {
		entries = entries[:maxConnections]
	}
	return entries
}
