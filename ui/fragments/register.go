package fragments

import (
	"log"

	"leadscope/ui/compose"
)

func init() {
	// Defer through the extension queue so this package merges into the
	// container's registry no matter when either side loads.
	if err := compose.Defer(RegisterAll); err != nil {
		log.Printf("[Fragments] deferred registration rejected: %v", err)
	}
}

// RegisterAll registers every built-in fragment on the given registry.
// Exposed directly so tests and late-constructed registries can bypass the
// already-drained default queue.
func RegisterAll(r *compose.Registry) {
	r.Register(profileHeader())
	r.Register(scoreRing())
	r.Register(lightNotice())
	r.Register(analysisSummary())
	r.Register(engagementBreakdown())
	r.Register(audienceInsights())
	r.Register(sellingPoints())
	r.Register(outreachMessage())
	r.Register(copywriterProfile())
	r.Register(commercialIntelligence())
	r.Register(persuasionProfile())
}
