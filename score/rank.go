package score

import (
	"sort"

	"github.com/campuslink/peerhelp-api/schema"
)

// urgencyWeights orders the feed independent of personalization.
var urgencyWeights = map[schema.UrgencyLevel]int{
	schema.UrgencyLow:      1,
	schema.UrgencyMedium:   2,
	schema.UrgencyHigh:     3,
	schema.UrgencyCritical: 4,
}

// UrgencyWeight returns the ordinal feed weight of an urgency level.
// Unknown levels weigh 0 and sink to the bottom.
func UrgencyWeight(level schema.UrgencyLevel) int {
	return urgencyWeights[level]
}

// RankWeights tunes how the personalized composite balances skill
// match against urgency. Urgency spans weights 1..4 while skill match
// spans 0..100, hence the asymmetric defaults.
type RankWeights struct {
	Skill   float64
	Urgency float64
}

// DefaultRankWeights keeps one urgency step worth a quarter of a full
// skill match.
var DefaultRankWeights = RankWeights{Skill: 1, Urgency: 25}

// RankByUrgency orders requests by urgency weight, newest first within
// the same level. The input slice is not modified.
func RankByUrgency(requests []schema.HelpRequest) []schema.HelpRequest {
	ranked := make([]schema.HelpRequest, len(requests))
	copy(ranked, requests)

	sort.SliceStable(ranked, func(i, j int) bool {
		wi, wj := UrgencyWeight(ranked[i].UrgencyLevel), UrgencyWeight(ranked[j].UrgencyLevel)
		if wi != wj {
			return wi > wj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}

// RankFeed orders requests for one helper. With a skill profile the
// composite of weighted skill match and urgency decides, recency
// breaking ties; without one it degrades to urgency-only ordering.
// Each returned request carries its skill match in MatchScore. The
// input slice is not modified.
func RankFeed(requests []schema.HelpRequest, helperSkills []string, weights RankWeights) []schema.HelpRequest {
	if len(helperSkills) == 0 {
		return RankByUrgency(requests)
	}

	ranked := make([]schema.HelpRequest, len(requests))
	copy(ranked, requests)
	for i := range ranked {
		ranked[i].MatchScore = SkillMatchScore(&ranked[i], helperSkills)
	}

	composite := func(r *schema.HelpRequest) float64 {
		return weights.Skill*float64(r.MatchScore) + weights.Urgency*float64(UrgencyWeight(r.UrgencyLevel))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := composite(&ranked[i]), composite(&ranked[j])
		if ci != cj {
			return ci > cj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}
