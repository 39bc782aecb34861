package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisType identifies which analysis pipeline produced a lead's data
// and therefore which modal layout is used to display it.
type AnalysisType string

const (
	AnalysisLight AnalysisType = "light"
	AnalysisDeep  AnalysisType = "deep"
	AnalysisXray  AnalysisType = "xray"
)

// Valid reports whether t is one of the known analysis types.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisLight, AnalysisDeep, AnalysisXray:
		return true
	}
	return false
}

func (t AnalysisType) String() string {
	return string(t)
}

// Lead is a researched Instagram profile. It is created and updated by the
// data-access layer on load; the composition engine treats it as read-only.
type Lead struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Handle      string    `db:"handle" json:"handle"`
	DisplayName string    `db:"display_name" json:"display_name"`
	AvatarURL   string    `db:"avatar_url" json:"avatar_url"`

	IsVerified bool `db:"is_verified" json:"is_verified"`
	IsPrivate  bool `db:"is_private" json:"is_private"`
	IsBusiness bool `db:"is_business" json:"is_business"`

	FollowerCount  int64  `db:"follower_count" json:"follower_count"`
	FollowingCount int64  `db:"following_count" json:"following_count"`
	PostCount      int64  `db:"post_count" json:"post_count"`
	ExternalURL    string `db:"external_url" json:"external_url"`

	// Denormalized from the latest analysis run so list views never need
	// to join against analysis_runs.
	AnalysisType AnalysisType `db:"analysis_type" json:"analysis_type"`
	Score        float64      `db:"score" json:"score"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClampedScore returns the lead's score forced into [0,100]. The tier
// classifier does not validate its input, so display paths clamp here.
func (l *Lead) ClampedScore() float64 {
	switch {
	case l.Score < 0:
		return 0
	case l.Score > 100:
		return 100
	}
	return l.Score
}
