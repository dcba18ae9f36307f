package concurrent

import (
	"sync"

	"gamehub/models"

	"gorm.io/gorm"
)

// PlatformStats is the community dashboard summary.
type PlatformStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalReviews  int64   `json:"totalReviews"`
	TotalComments int64   `json:"totalComments"`
	AverageScore  float64 `json:"averageScore"`
	TopGenre      string  `json:"topGenre"`
}

// CalculatePlatformStats runs the independent aggregate queries in parallel.
func CalculatePlatformStats(db *gorm.DB) PlatformStats {
	stats := PlatformStats{TopGenre: "N/A"}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		db.Model(&models.User{}).Count(&stats.TotalUsers)
	}()

	go func() {
		defer wg.Done()
		db.Model(&models.Review{}).Count(&stats.TotalReviews)
	}()

	go func() {
		defer wg.Done()
		db.Model(&models.Comment{}).Count(&stats.TotalComments)
	}()

	go func() {
		defer wg.Done()
		var avg struct{ Avg float64 }
		db.Model(&models.Review{}).Select("COALESCE(AVG(overall_score), 0) as avg").Scan(&avg)
		stats.AverageScore = avg.Avg
	}()

	go func() {
		defer wg.Done()
		var top struct {
			Genre string
			Count int64
		}
		db.Model(&models.Review{}).
			Select("genre, COUNT(*) as count").
			Where("genre != ''").
			Group("genre").
			Order("count DESC").
			Limit(1).
			Scan(&top)
		if top.Genre != "" {
			stats.TopGenre = top.Genre
		}
	}()

	wg.Wait()
	return stats
}
