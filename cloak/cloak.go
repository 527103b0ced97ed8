package cloak

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"sync"

	"github.com/campuslink/peerhelp-api/schema"
)

// Word lists for pseudonymous labels. Nothing here relates to any real
// member attribute; the label is pure noise with a friendly face.
var (
	adjectives = []string{
		"Amber", "Brisk", "Calm", "Daring", "Eager", "Fuzzy", "Gentle",
		"Hidden", "Ivory", "Jolly", "Keen", "Lively", "Mellow", "Nimble",
		"Opal", "Plucky", "Quiet", "Rustic", "Snappy", "Tidy", "Upbeat",
		"Vivid", "Witty", "Zesty",
	}
	nouns = []string{
		"Badger", "Beacon", "Comet", "Falcon", "Fern", "Harbor", "Heron",
		"Lantern", "Maple", "Meadow", "Otter", "Pebble", "Pioneer",
		"Quill", "Raven", "Sparrow", "Summit", "Thicket", "Tundra",
		"Walnut", "Willow", "Wren",
	}
)

var (
	rngOnce sync.Once
	rng     *mrand.Rand
	rngMu   sync.Mutex
)

// source returns a process-wide generator seeded from the OS entropy
// pool, so restarted instances never replay the same label sequence.
func source() *mrand.Rand {
	rngOnce.Do(func() {
		var seed int64
		var b [8]byte
		if _, err := rand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		}
		rng = mrand.New(mrand.NewSource(seed))
	})
	return rng
}

func randInt(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return source().Intn(n)
}

func randSeed() string {
	rngMu.Lock()
	defer rngMu.Unlock()
	return fmt.Sprintf("%08x", source().Uint32())
}

// New generates a pseudonymous identity for a member. It takes no
// input on purpose: no field of the result is a function of the real
// member reference, so the output cannot be inverted or correlated.
// Successive calls return different identities; callers persist the
// one generated at creation time to keep it stable for the lifetime of
// a request.
func New() schema.CloakedIdentity {
	label := fmt.Sprintf("%s %s #%02d",
		adjectives[randInt(len(adjectives))],
		nouns[randInt(len(nouns))],
		randInt(100),
	)

	return schema.CloakedIdentity{
		Label: label,
		Avatar: schema.Avatar{
			ColorSeed:   randSeed(),
			Shape:       schema.AvatarShapes[randInt(len(schema.AvatarShapes))],
			PatternSeed: randSeed(),
		},
	}
}
