package rpgtoolkit

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/assert"
)

func TestSessionEntity(t *testing.T) {
	entity := WrapSession("sim_123")

	assert.Equal(t, "sim_123", entity.GetID())
	assert.Equal(t, SessionEntityType, entity.GetType())

	var _ core.Entity = entity
}
