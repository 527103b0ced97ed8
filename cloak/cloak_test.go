package cloak

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslink/peerhelp-api/schema"
)

func TestNewFillsEveryField(t *testing.T) {
	id := New()
	assert.NotEmpty(t, id.Label)
	assert.NotEmpty(t, id.Avatar.ColorSeed)
	assert.NotEmpty(t, id.Avatar.PatternSeed)

	found := false
	for _, s := range schema.AvatarShapes {
		if id.Avatar.Shape == s {
			found = true
		}
	}
	assert.True(t, found, "shape must come from the bounded enumeration")
}

func TestNewIsNotDeterministic(t *testing.T) {
	// A hundred draws should never be all identical; a collision on a
	// single pair is possible and fine.
	first := New()
	allSame := true
	for i := 0; i < 100; i++ {
		if New() != first {
			allSame = false
			break
		}
	}
	assert.False(t, allSame)
}
