package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslink/peerhelp-api/schema"
)

func TestSkillMatchedExact(t *testing.T) {
	assert.True(t, SkillMatched("python", "Python"))
}

func TestSkillMatchedSubstring(t *testing.T) {
	assert.True(t, SkillMatched("React", "React.js"))
	assert.True(t, SkillMatched("PostgreSQL", "postgres"))
}

func TestSkillMatchedDisjoint(t *testing.T) {
	assert.False(t, SkillMatched("Rust", "Haskell"))
}

func TestSkillMatchedEmpty(t *testing.T) {
	assert.False(t, SkillMatched("", "Go"))
	assert.False(t, SkillMatched("Go", "  "))
}

func TestSkillMatchScoreFullMatch(t *testing.T) {
	req := schema.HelpRequest{SkillsNeeded: []string{"Python", "Pandas"}}
	assert.Equal(t, 100, SkillMatchScore(&req, []string{"pandas", "python", "sql"}))
}

func TestSkillMatchScoreHalfMatch(t *testing.T) {
	req := schema.HelpRequest{SkillsNeeded: []string{"Python", "Pandas"}}
	assert.Equal(t, 50, SkillMatchScore(&req, []string{"python"}))
}

func TestSkillMatchScoreRounds(t *testing.T) {
	req := schema.HelpRequest{SkillsNeeded: []string{"a1", "b2", "c3"}}
	// 1 of 3 matched: 33.33 rounds to 33
	assert.Equal(t, 33, SkillMatchScore(&req, []string{"a1"}))
	// 2 of 3 matched: 66.67 rounds to 67
	assert.Equal(t, 67, SkillMatchScore(&req, []string{"a1", "b2"}))
}

func TestSkillMatchScoreEmptyHelperSkills(t *testing.T) {
	req := schema.HelpRequest{SkillsNeeded: []string{"Python"}}
	assert.Equal(t, 0, SkillMatchScore(&req, nil))
}

func TestSkillMatchScoreBounds(t *testing.T) {
	reqs := []schema.HelpRequest{
		{SkillsNeeded: []string{"Go", "Docker", "Kubernetes"}},
		{SkillsNeeded: []string{"Essay Review"}},
		{SkillsNeeded: nil},
	}
	profiles := [][]string{nil, {}, {"go"}, {"docker", "essay"}, {"x", "y", "z"}}

	for i := range reqs {
		for _, p := range profiles {
			s := SkillMatchScore(&reqs[i], p)
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, 100)
		}
	}
}

func TestMatchesAnySkill(t *testing.T) {
	req := schema.HelpRequest{SkillsNeeded: []string{"Linear Algebra", "MATLAB"}}
	assert.True(t, MatchesAnySkill(&req, []string{"matlab"}))
	assert.False(t, MatchesAnySkill(&req, []string{"chemistry"}))
}
