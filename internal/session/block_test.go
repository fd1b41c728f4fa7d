package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockNesting(t *testing.T) {
	s, _ := newTestSession(t)

	s.blockStart("PLAY")
	outer := s.currentBlock
	require.NotNil(t, outer)
	assert.Equal(t, 0, outer.ID)

	s.blockStart("POWER")
	inner := s.currentBlock
	assert.Equal(t, 1, inner.ID)
	assert.Same(t, outer, inner.Parent)
	require.Len(t, outer.Children, 1)

	s.blockEnd()
	assert.Same(t, outer, s.currentBlock)
	s.blockEnd()
	assert.Nil(t, s.currentBlock)
}

func TestBlockEndWithoutStart(t *testing.T) {
	s, _ := newTestSession(t)
	// Unbalanced BLOCK_END lines are tolerated.
	s.blockEnd()
	s.blockEnd()
	assert.Nil(t, s.currentBlock)

	s.blockStart("TRIGGER")
	s.blockEnd()
	s.blockEnd()
	assert.Nil(t, s.currentBlock)
}

func TestKnownCardIDQueueIsFIFOPerBlock(t *testing.T) {
	s, _ := newTestSession(t)

	// No current block: enqueue and dequeue are no-ops.
	s.addKnownCardID("CS2_029", 1)
	assert.Empty(t, s.popKnownCardID())

	s.blockStart("POWER")
	s.addKnownCardID("AAA", 1)
	s.addKnownCardID("BBB", 2)
	assert.Equal(t, "AAA", s.popKnownCardID())
	assert.Equal(t, "BBB", s.popKnownCardID())

	// A nested block has its own queue.
	s.blockStart("TRIGGER")
	assert.Empty(t, s.popKnownCardID())
	s.addKnownCardID("CCC", 1)
	assert.Equal(t, "CCC", s.popKnownCardID())
	s.blockEnd()

	// Back in the outer block the remaining entry is still there.
	assert.Equal(t, "BBB", s.popKnownCardID())
	assert.Empty(t, s.popKnownCardID())
}

func TestEmptyCardIDIsNotEnqueued(t *testing.T) {
	s, _ := newTestSession(t)
	s.blockStart("POWER")
	s.addKnownCardID("", 3)
	assert.Empty(t, s.popKnownCardID())
}
