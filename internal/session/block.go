package session

// Block is one nested unit of causality in the log, one per game action.
// Blocks form a tree: the session only ever walks upward from the current
// block, so ended blocks become unreachable and are collected naturally.
type Block struct {
	Parent   *Block
	Children []*Block
	ID       int
	Type     string
}

func newBlock(parent *Block, id int, blockType string) *Block {
	return &Block{Parent: parent, ID: id, Type: blockType}
}

func (b *Block) createChild(id int, blockType string) *Block {
	child := newBlock(b, id, blockType)
	b.Children = append(b.Children, child)
	return child
}

// blockStart pushes a new block as a child of the current one (or as a
// root), assigning the next sequential id.
func (s *Session) blockStart(blockType string) {
	id := s.maxBlockID
	s.maxBlockID++
	if s.currentBlock != nil {
		s.currentBlock = s.currentBlock.createChild(id, blockType)
	} else {
		s.currentBlock = newBlock(nil, id, blockType)
	}
}

// blockEnd pops to the parent block. Unbalanced BLOCK_END lines leave the
// session at the root rather than failing.
func (s *Session) blockEnd() {
	if s.currentBlock != nil {
		s.currentBlock = s.currentBlock.Parent
	}
}

// addKnownCardID enqueues a card id the current block is known to create
// without disclosing it, count times, FIFO per block.
func (s *Session) addKnownCardID(cardID string, count int) {
	if s.currentBlock == nil || cardID == "" {
		return
	}
	blockID := s.currentBlock.ID
	for i := 0; i < count; i++ {
		s.knownCardIDs[blockID] = append(s.knownCardIDs[blockID], cardID)
	}
}

// popKnownCardID consumes the next pending inferred card id for the current
// block, "" when none is queued.
func (s *Session) popKnownCardID() string {
	if s.currentBlock == nil {
		return ""
	}
	blockID := s.currentBlock.ID
	queue := s.knownCardIDs[blockID]
	if len(queue) == 0 {
		return ""
	}
	cardID := queue[0]
	if len(queue) == 1 {
		delete(s.knownCardIDs, blockID)
	} else {
		s.knownCardIDs[blockID] = queue[1:]
	}
	return cardID
}
