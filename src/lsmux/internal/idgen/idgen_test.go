package idgen

import (
	"errors"
	"regexp"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	g := New()
	hex := regexp.MustCompile(`^[0-9a-f]{8}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		p := string(g.Next())
		assert.Regexp(t, hex, p)
		seen[p] = struct{}{}
	}
	assert.Greater(t, len(seen), 90)
}

func TestNextPanicsOnEntropyFailure(t *testing.T) {
	g := &generator{newUUID: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("no entropy")
	}}
	assert.Panics(t, func() { g.Next() })
}
