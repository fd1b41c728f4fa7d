package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/carddb"
	"github.com/zippyy/deck-tracker-go/internal/hs"
)

// maxHeroPollAttempts bounds the hero-attribution wait; at the default
// interval this gives the player entities ten seconds to appear.
const maxHeroPollAttempts = 100

// resolveHero attributes a hero card to a player slot. The player entities
// may not exist yet when the hero's CARDTYPE tag arrives, so this runs as a
// cancellable background poll and never holds up line dispatch.
func (s *Session) resolveHero(ctx context.Context, entityID int) {
	s.logger.Info("found hero", zap.Int("entity", entityID))
	ticker := time.NewTicker(s.HeroPollInterval)
	defer ticker.Stop()
	for attempt := 0; attempt < maxHeroPollAttempts; attempt++ {
		if s.tryAttributeHero(entityID) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
	s.logger.Warn("gave up waiting for player entities", zap.Int("entity", entityID))
}

// tryAttributeHero reports true when attribution finished (or turned out to
// be unnecessary); false means the player entities are not there yet.
func (s *Session) tryAttributeHero(entityID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	playerEntity := s.game.PlayerEntity()
	if playerEntity == nil {
		return false
	}
	if s.game.Player.Class == "" && entityID == playerEntity.GetTag(hs.TagHeroEntity) {
		entity, ok := s.game.Entities[entityID]
		if !ok {
			return true
		}
		name := carddb.HeroNameFromID(entity.CardID)
		s.game.Player.Class = name
		s.sink.SetPlayerHero(name)
		return true
	}

	opponentEntity := s.game.OpponentEntity()
	if opponentEntity == nil {
		return false
	}
	if s.game.Opponent.Class == "" && entityID == opponentEntity.GetTag(hs.TagHeroEntity) {
		entity, ok := s.game.Entities[entityID]
		if !ok {
			return true
		}
		name := carddb.HeroNameFromID(entity.CardID)
		s.game.Opponent.Class = name
		s.sink.SetOpponentHero(name)
	}
	return true
}
