// Package idgen mints short identifiers used to namespace server commands.
package idgen

//go:generate mockgen -destination=idgenmock/idgen_mock.go -package=idgenmock . Generator

import (
	"github.com/gofrs/uuid"
	"github.com/uber/lsmux/src/lsmux/entity"
	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// PrefixLength is the number of hex characters in a command prefix.
const PrefixLength = 8

// Generator produces command prefixes.
type Generator interface {
	Next() entity.CommandPrefix
}

type generator struct {
	newUUID func() (uuid.UUID, error)
}

// New returns a Generator backed by random UUIDs.
func New() Generator {
	return &generator{newUUID: uuid.NewV4}
}

// Next returns the first eight hex characters of a random UUID.
// It panics if the system entropy source fails.
func (g *generator) Next() entity.CommandPrefix {
	id := uuid.Must(g.newUUID())
	return entity.CommandPrefix(id.String()[:PrefixLength])
}
