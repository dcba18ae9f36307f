package handlers

import (
	"gamehub/analytics"
	"gamehub/auth"
	"gamehub/cache"
	"gamehub/external"
	"gamehub/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler carries every service the endpoints need. It is built once in main
// and shared; all fields are read-only after construction.
type Handler struct {
	DB        *gorm.DB
	Cache     *cache.Cache
	Log       *logrus.Logger
	Auth      *auth.Service
	GiantBomb *external.GiantBombClient
	Steam     *external.SteamClient
}

func New(db *gorm.DB, c *cache.Cache, log *logrus.Logger, authSvc *auth.Service, giantBomb *external.GiantBombClient, steam *external.SteamClient) *Handler {
	return &Handler{
		DB:        db,
		Cache:     c,
		Log:       log,
		Auth:      authSvc,
		GiantBomb: giantBomb,
		Steam:     steam,
	}
}

// snapshotReviews converts stored reviews into the immutable view the
// analytics engines consume.
func snapshotReviews(reviews []models.Review) []analytics.ReviewSnapshot {
	snapshots := make([]analytics.ReviewSnapshot, 0, len(reviews))
	for _, r := range reviews {
		snapshots = append(snapshots, analytics.ReviewSnapshot{
			GameID:       r.GameID,
			GameName:     r.GameName,
			GameImageURL: r.GameImageURL,
			Genre:        r.Genre,
			Scores: [5]float64{
				analytics.AttrGameplay:    r.Gameplay,
				analytics.AttrGraphics:    r.Graphics,
				analytics.AttrNarrative:   r.Narrative,
				analytics.AttrAudio:       r.Audio,
				analytics.AttrPerformance: r.Performance,
			},
			OverallScore: r.OverallScore,
			IsFavorite:   r.IsFavorite,
		})
	}
	return snapshots
}

func snapshotUser(user models.User) analytics.UserSnapshot {
	return analytics.UserSnapshot{
		Level:   user.Level,
		SteamID: user.SteamID,
		XboxID:  user.XboxID,
		PSNID:   user.PSNID,
		EpicID:  user.EpicID,
	}
}

// loadUserReviews fetches the full review set of one user.
func (h *Handler) loadUserReviews(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := h.DB.Where("owner_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
