package analytics

// Attribute indexes one of the five rated facets of a review.
type Attribute int

const (
	AttrGameplay Attribute = iota
	AttrGraphics
	AttrNarrative
	AttrAudio
	AttrPerformance
)

// Attributes lists every facet in a fixed order.
var Attributes = [5]Attribute{AttrGameplay, AttrGraphics, AttrNarrative, AttrAudio, AttrPerformance}

func (a Attribute) String() string {
	switch a {
	case AttrGameplay:
		return "gameplay"
	case AttrGraphics:
		return "graphics"
	case AttrNarrative:
		return "narrative"
	case AttrAudio:
		return "audio"
	case AttrPerformance:
		return "performance"
	}
	return "unknown"
}

// ReviewSnapshot is an immutable copy of one review, the shared input of the
// aggregation, compatibility and quiz engines. Scores is indexed by Attribute.
type ReviewSnapshot struct {
	GameID       int
	GameName     string
	GameImageURL string
	Genre        string
	Scores       [5]float64
	OverallScore float64
	IsFavorite   bool
}

// UserSnapshot carries the user fields the achievement checks look at.
// Platform ids are plain strings; empty means not connected.
type UserSnapshot struct {
	Level   int
	SteamID string
	XboxID  string
	PSNID   string
	EpicID  string
}

// OwnedReview is a review together with its owner, the compatibility engine's
// view of everyone else's ratings.
type OwnedReview struct {
	OwnerID      uint
	Username     string
	AvatarURL    string
	GameID       int
	OverallScore float64
}
