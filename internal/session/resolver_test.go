package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zippyy/deck-tracker-go/internal/hs"
)

func TestNameResolutionSingleUnnamedPlayer(t *testing.T) {
	s, _ := newTestSession(t)
	g := s.Game()
	p1 := g.EntityByID(2)
	p1.SetTag(hs.TagPlayerID, 1)
	p1.Name = "Alice"
	p2 := g.EntityByID(3)
	p2.SetTag(hs.TagPlayerID, 2)

	feed(s, "PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Bob tag=RESOURCES value=3")

	assert.Equal(t, "Bob", p2.Name, "the only unnamed player slot takes the name")
	assert.Equal(t, 3, p2.GetTag(hs.TagResources))
	assert.Empty(t, s.tmpEntities)
}

func TestNameResolutionByKnownName(t *testing.T) {
	s, _ := newTestSession(t)
	g := s.Game()
	p1 := g.EntityByID(2)
	p1.SetTag(hs.TagPlayerID, 1)
	p1.Name = "Alice"

	feed(s, "PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Alice tag=RESOURCES value=7")

	assert.Equal(t, 7, p1.GetTag(hs.TagResources))
	assert.Empty(t, s.tmpEntities)
}

// The client names a human opponent UNKNOWN HUMAN PLAYER until the real
// name arrives; the first unmatched name replaces it.
func TestNameResolutionUnknownHumanPlayerRebind(t *testing.T) {
	s, _ := newTestSession(t)
	g := s.Game()
	p1 := g.EntityByID(2)
	p1.SetTag(hs.TagPlayerID, 1)
	p1.Name = "Alice"
	p2 := g.EntityByID(3)
	p2.SetTag(hs.TagPlayerID, 2)
	p2.Name = "UNKNOWN HUMAN PLAYER"

	feed(s, "PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Bob tag=RESOURCES value=1")

	assert.Equal(t, "Bob", p2.Name)
	assert.Equal(t, 1, p2.GetTag(hs.TagResources))
}

// With both player slots unnamed, only a CURRENT_PLAYER=0 change can be
// attributed: it must belong to whoever currently holds the tag. This
// heuristic depends on the engine clearing the old current player before
// setting the new one.
func TestNameResolutionCurrentPlayerHeuristic(t *testing.T) {
	s, _ := newTestSession(t)
	g := s.Game()
	p1 := g.EntityByID(2)
	p1.SetTag(hs.TagPlayerID, 1)
	p1.SetTag(hs.TagCurrentPlayer, 1)
	p2 := g.EntityByID(3)
	p2.SetTag(hs.TagPlayerID, 2)

	feed(s, "PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Bob tag=CURRENT_PLAYER value=0")

	assert.Equal(t, "Bob", p1.Name)
	assert.Equal(t, 0, p1.GetTag(hs.TagCurrentPlayer))
	assert.Empty(t, p2.Name)
}

func TestTmpEntityAccumulatesAndReplaysInOrder(t *testing.T) {
	s, _ := newTestSession(t)
	g := s.Game()
	p1 := g.EntityByID(2)
	p1.SetTag(hs.TagPlayerID, 1)
	p2 := g.EntityByID(3)
	p2.SetTag(hs.TagPlayerID, 2)

	// Two unnamed players and a non-heuristic tag: nothing to attribute
	// yet, the changes accumulate on a placeholder.
	feed(s,
		"PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Bob tag=RESOURCES value=1",
		"PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Bob tag=RESOURCES value=2",
	)
	require.Len(t, s.tmpEntities, 1)
	assert.Empty(t, p2.Name)

	// Once the ids are determined and the name is known to be the
	// opponent's, the placeholder replays onto the real entity in order.
	g.Opponent.Name = "Bob"
	g.SetPlayerIDs(1, 2)

	assert.Empty(t, s.tmpEntities)
	assert.Equal(t, "Bob", p2.Name)
	assert.Equal(t, 2, p2.GetTag(hs.TagResources), "last accumulated value wins after ordered replay")
}

func TestUnresolvableReferenceIsDropped(t *testing.T) {
	s, _ := newTestSession(t)

	// No players at all: the change parks on a placeholder and nothing
	// else happens.
	feed(s, "PowerTaskList.DebugPrintPower() - TAG_CHANGE Entity=Nobody tag=RESOURCES value=9")
	require.Len(t, s.tmpEntities, 1)
	assert.Empty(t, s.Game().Entities)
}
