package ports

import "leadscope/models"

// BuildNotice is emitted once per completed modal build for observability
// collaborators (analytics, the SSE event stream).
type BuildNotice struct {
	AnalysisType    models.AnalysisType `json:"analysis_type"`
	LeadHandle      string              `json:"lead_handle"`
	IsHighTierScore bool                `json:"is_high_tier_score"`
}

// BuildObserver receives build-complete notices. Implementations must not
// block: notification happens synchronously on the build path.
type BuildObserver interface {
	BuildCompleted(notice BuildNotice)
}

// BuildObserverFunc adapts a plain function to BuildObserver.
type BuildObserverFunc func(notice BuildNotice)

// BuildCompleted implements BuildObserver.
func (f BuildObserverFunc) BuildCompleted(notice BuildNotice) {
	f(notice)
}
