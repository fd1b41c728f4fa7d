package session

import (
	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/hs"
	"github.com/zippyy/deck-tracker-go/internal/powerlog"
)

// unknownHumanPlayer is the placeholder name the client assigns before a
// human opponent's real name is known.
const unknownHumanPlayer = "UNKNOWN HUMAN PLAYER"

// tmpEntity is a name-keyed placeholder for an entity whose numeric id is
// not yet known. Tags are kept in arrival order so a later replay onto the
// resolved entity preserves ordering.
type tmpEntity struct {
	id   int
	name string
	tags []tmpTag
}

type tmpTag struct {
	tag   hs.GameTag
	value int
}

func (t *tmpEntity) setTag(tag hs.GameTag, value int) {
	t.tags = append(t.tags, tmpTag{tag: tag, value: value})
}

func (s *Session) tmpEntityByName(name string) *tmpEntity {
	for _, t := range s.tmpEntities {
		if t.name == name {
			return t
		}
	}
	return nil
}

func (s *Session) holdsTmpEntity(tmp *tmpEntity) bool {
	for _, t := range s.tmpEntities {
		if t == tmp {
			return true
		}
	}
	return false
}

func (s *Session) removeTmpEntity(tmp *tmpEntity) {
	for i, t := range s.tmpEntities {
		if t == tmp {
			s.tmpEntities = append(s.tmpEntities[:i], s.tmpEntities[i+1:]...)
			return
		}
	}
}

// handleTagChangeLine resolves the raw entity reference of a TAG_CHANGE
// line and dispatches it. Resolution order: explicit id, known name,
// UNKNOWN HUMAN PLAYER rebind, single unnamed player slot, the
// CURRENT_PLAYER==0 heuristic, and finally a temporary entity. An
// unresolvable reference drops the action without error.
func (s *Session) handleTagChangeLine(line powerlog.Line) {
	ref := line.Entity
	if ref.HasID {
		s.tagChange(line.Tag, ref.ID, line.Value, false)
		return
	}
	name := ref.Name
	if name == "" {
		return
	}
	if e := s.game.EntityByName(name); e != nil {
		s.tagChange(line.Tag, e.ID, line.Value, false)
		return
	}

	players := s.game.PlayerEntities()
	var unnamed []*hs.Entity
	for _, p := range players {
		if p.Name == "" {
			unnamed = append(unnamed, p)
		}
	}
	var target *hs.Entity
	if len(unnamed) == 0 {
		for _, p := range players {
			if p.Name == unknownHumanPlayer {
				s.logger.Info("updating UNKNOWN HUMAN PLAYER", zap.String("name", name))
				target = p
				break
			}
		}
	}

	// While the id is unknown, accumulate on a temporary entity.
	tmp := s.tmpEntityByName(name)
	if tmp == nil {
		tmp = &tmpEntity{id: len(s.tmpEntities) + 1, name: name}
		s.tmpEntities = append(s.tmpEntities, tmp)
	}
	tag := hs.ParseGameTag(line.Tag)
	value := hs.ParseTagValue(tag, line.Value)

	if len(unnamed) == 1 {
		target = unnamed[0]
	} else if len(unnamed) == 2 && tag == hs.TagCurrentPlayer && value == 0 {
		for _, e := range s.game.Entities {
			if e.HasTag(hs.TagCurrentPlayer) {
				target = e
				break
			}
		}
	}

	if target != nil {
		tmp.setTag(tag, value)
		s.transferTempData(tmp, target)
	}
	if s.holdsTmpEntity(tmp) {
		tmp.setTag(tag, value)
		var playerID int
		switch tmp.name {
		case s.game.Player.Name:
			playerID = s.game.Player.ID
		case s.game.Opponent.Name:
			playerID = s.game.Opponent.ID
		}
		if playerID > 0 {
			for _, e := range s.game.Entities {
				if e.HasTag(hs.TagPlayerID) && e.GetTag(hs.TagPlayerID) == playerID {
					s.transferTempData(tmp, e)
					break
				}
			}
		}
	}
}

// transferTempData replays a temporary entity's accumulated tags, in their
// original order, onto the resolved entity and discards the placeholder.
func (s *Session) transferTempData(tmp *tmpEntity, entity *hs.Entity) {
	s.logger.Info("transferring temp entity tags",
		zap.Int("tags", len(tmp.tags)),
		zap.String("name", tmp.name),
		zap.Int("entity", entity.ID),
	)
	entity.Name = tmp.name
	s.removeTmpEntity(tmp)
	for _, t := range tmp.tags {
		s.applyTagChange(t.tag, entity.ID, t.value, false)
	}
}

// onPlayersFound runs once both player ids become known: any temporary
// entity named after a player is replayed onto the real player entity, and
// if that resolved anything the queued actions get drained again.
func (s *Session) onPlayersFound() {
	count := len(s.tmpEntities)
	if count == 0 {
		return
	}
	pending := make([]*tmpEntity, count)
	copy(pending, s.tmpEntities)
	for _, tmp := range pending {
		switch tmp.name {
		case s.game.Player.Name:
			if e := s.game.PlayerEntity(); e != nil {
				s.transferTempData(tmp, e)
			}
		case s.game.Opponent.Name:
			if e := s.game.OpponentEntity(); e != nil {
				s.transferTempData(tmp, e)
			}
		}
	}
	if len(s.tmpEntities) < count {
		s.logger.Info("invoking queued actions after temp entity resolution")
		s.invokeQueuedActions()
	}
}
