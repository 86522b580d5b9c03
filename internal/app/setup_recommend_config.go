package app

import (
	"github.com/glowcircle/askmatch/internal/command"
	"github.com/glowcircle/askmatch/internal/domain"
)

// DefaultRecommendUsersConfig returns the default config for the discovery
// widget: a 30-day candidate window capped at 50 posts, with the standard
// similarity threshold and top-3 selection.
func DefaultRecommendUsersConfig() command.RecommendUsersConfig {
	return command.RecommendUsersConfig{
		WindowDays:    30,
		MaxCandidates: 50,
		Rank:          domain.DefaultRankConfig(),
	}
}
