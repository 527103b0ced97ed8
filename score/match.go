package score

import (
	"math"
	"strings"

	"github.com/campuslink/peerhelp-api/schema"
)

// SkillMatched reports whether a needed skill tag and a helper skill
// tag refer to the same thing. Tags are free text, so in addition to a
// case-insensitive equality we accept a substring either way; this
// absorbs the usual tag variance ("React" vs "React.js", "Postgres"
// vs "PostgreSQL").
func SkillMatched(needed, offered string) bool {
	a := strings.ToLower(strings.TrimSpace(needed))
	b := strings.ToLower(strings.TrimSpace(offered))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// SkillMatchScore computes the personalized relevance of a request for
// a helper: round(100 * matched / |needed|). A helper with no declared
// skills scores 0 against everything; a request never declares an
// empty skill set, but an empty set also scores 0 rather than erroring.
func SkillMatchScore(request *schema.HelpRequest, helperSkills []string) int {
	if len(request.SkillsNeeded) == 0 || len(helperSkills) == 0 {
		return 0
	}

	matched := 0
	for _, needed := range request.SkillsNeeded {
		for _, offered := range helperSkills {
			if SkillMatched(needed, offered) {
				matched++
				break
			}
		}
	}

	return int(math.Round(100 * float64(matched) / float64(len(request.SkillsNeeded))))
}

// MatchesAnySkill reports whether the request needs at least one of the
// given skills. Used for OR-matched feed filters.
func MatchesAnySkill(request *schema.HelpRequest, skills []string) bool {
	for _, needed := range request.SkillsNeeded {
		for _, s := range skills {
			if SkillMatched(needed, s) {
				return true
			}
		}
	}
	return false
}
