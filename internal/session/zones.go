package session

import (
	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/hs"
)

// defaultMaxHeroPowerID bounds entity ids that can belong to the initial
// board (heroes, hero powers) when the HERO_ENTITY tags are not known yet.
const defaultMaxHeroPowerID = 66

// zoneChange classifies one ZONE tag transition into a semantic event. The
// first few entity ids are the game and player entities, which change zone
// meaninglessly.
func (s *Session) zoneChange(entityID, value, prevValue int) {
	if entityID <= 3 {
		return
	}
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if !entity.Info.OriginalZoneSet {
		if prev := hs.Zone(prevValue); prev != hs.ZoneInvalid && prev != hs.ZoneSetAside {
			entity.Info.OriginalZone = prev
			entity.Info.OriginalZoneSet = true
		} else if next := hs.Zone(value); next != hs.ZoneInvalid && next != hs.ZoneSetAside {
			entity.Info.OriginalZone = next
			entity.Info.OriginalZoneSet = true
		}
	}
	entity.Info.LastZoneChangeTurn = s.turnNumber()

	controller := entity.GetTag(hs.TagController)
	switch hs.Zone(prevValue) {
	case hs.ZoneDeck:
		s.zoneChangeFromDeck(entityID, value, prevValue, controller, entity.CardID)
	case hs.ZoneHand:
		s.zoneChangeFromHand(entityID, value, prevValue, controller, entity.CardID)
	case hs.ZonePlay:
		s.zoneChangeFromPlay(entityID, value, prevValue, controller, entity.CardID)
	case hs.ZoneSecret:
		s.zoneChangeFromSecret(entityID, value, prevValue, controller, entity.CardID)
	case hs.ZoneInvalid:
		maxID := s.maxHeroPowerID()
		if !s.setupDone && (entityID <= maxID || s.preSetupDeal(entity)) {
			entity.Info.OriginalZone = hs.ZoneDeck
			entity.Info.OriginalZoneSet = true
			s.simulateZoneChangesFromDeck(entityID, value, entity.CardID)
		} else {
			s.zoneChangeFromOther(entityID, value, prevValue, controller, entity.CardID)
		}
	case hs.ZoneGraveyard, hs.ZoneSetAside, hs.ZoneRemovedFromGame:
		s.zoneChangeFromOther(entityID, value, prevValue, controller, entity.CardID)
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

// The last hero power is created right after the last hero, hence +1.
func (s *Session) maxHeroPowerID() int {
	maxID := defaultMaxHeroPowerID
	if pe := s.game.PlayerEntity(); pe != nil && pe.GetTag(hs.TagHeroEntity) > maxID {
		maxID = pe.GetTag(hs.TagHeroEntity)
	}
	if oe := s.game.OpponentEntity(); oe != nil && oe.GetTag(hs.TagHeroEntity) > maxID {
		maxID = oe.GetTag(hs.TagHeroEntity)
	}
	return maxID + 1
}

// preSetupDeal recognizes the initial deal while the game entity's STEP is
// still INVALID: low zone positions during that window are opening-hand
// cards that logically originate in the deck.
func (s *Session) preSetupDeal(entity *hs.Entity) bool {
	ge := s.game.GameEntity()
	return ge != nil && ge.GetTag(hs.TagStep) == hs.StepInvalid && entity.GetTag(hs.TagZonePosition) < 5
}

// simulateZoneChangesFromDeck synthesizes the deck->hand and hand->play
// legs for an entity whose previous zone was INVALID but whose context
// implies a deck origin, so consumers observe a coherent draw-then-play
// sequence instead of an entity appearing out of nowhere.
func (s *Session) simulateZoneChangesFromDeck(entityID, value int, cardID string) {
	if hs.Zone(value) == hs.ZoneDeck {
		return
	}
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if hs.Zone(value) == hs.ZoneSetAside {
		entity.Info.Created = true
		return
	}
	if (entity.IsHero() && !isPlayableHero(entity)) || entity.IsHeroPower() || entity.IsPlayer() ||
		entity.IsGame() || entity.HasTag(hs.TagCreator) {
		return
	}
	controller := entity.GetTag(hs.TagController)
	s.zoneChangeFromDeck(entityID, int(hs.ZoneHand), int(hs.ZoneDeck), controller, cardID)
	if hs.Zone(value) == hs.ZoneHand {
		return
	}
	s.zoneChangeFromHand(entityID, int(hs.ZonePlay), int(hs.ZoneHand), controller, cardID)
	if hs.Zone(value) == hs.ZonePlay {
		return
	}
	s.zoneChangeFromPlay(entityID, value, int(hs.ZonePlay), controller, cardID)
}

// isPlayableHero distinguishes hero cards a deck can contain from the two
// starting heroes, which never move through hand or deck.
func isPlayableHero(e *hs.Entity) bool {
	return e.HasTag(hs.TagCreator) || e.GetTag(hs.TagZonePosition) > 0
}

func (s *Session) zoneChangeFromDeck(entityID, value, prevValue, controller int, cardID string) {
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	switch hs.Zone(value) {
	case hs.ZoneHand:
		if controller == s.game.Player.ID {
			s.sink.PlayerDraw(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentDraw(entity, s.turnNumber())
		}
	case hs.ZoneSetAside, hs.ZoneRemovedFromGame:
		if !s.setupDone {
			entity.Info.Created = true
			return
		}
		if controller == s.game.Player.ID {
			if s.joustReveals > 0 {
				s.joustReveals--
				return
			}
			s.sink.PlayerRemoveFromDeck(entity, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			if s.joustReveals > 0 {
				s.joustReveals--
				return
			}
			s.sink.OpponentRemoveFromDeck(entity, s.turnNumber())
		}
	case hs.ZoneGraveyard:
		entity.Info.Discarded = true
		if controller == s.game.Player.ID {
			s.sink.PlayerDeckDiscard(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentDeckDiscard(entity, cardID, s.turnNumber())
		}
	case hs.ZonePlay:
		if controller == s.game.Player.ID {
			s.sink.PlayerDeckToPlay(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentDeckToPlay(entity, cardID, s.turnNumber())
		}
	case hs.ZoneSecret:
		if controller == s.game.Player.ID {
			s.sink.PlayerSecretPlayed(entity, cardID, s.turnNumber(), hs.Zone(prevValue))
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentSecretPlayed(entity, cardID, -1, s.turnNumber(), hs.Zone(prevValue), entityID)
		}
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

func (s *Session) zoneChangeFromHand(entityID, value, prevValue, controller int, cardID string) {
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	switch hs.Zone(value) {
	case hs.ZonePlay:
		if controller == s.game.Player.ID {
			s.sink.PlayerPlay(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentPlay(entity, cardID, entity.GetTag(hs.TagZonePosition), s.turnNumber())
		}
	case hs.ZoneRemovedFromGame, hs.ZoneSetAside, hs.ZoneGraveyard:
		entity.Info.Discarded = true
		if controller == s.game.Player.ID {
			s.sink.PlayerHandDiscard(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentHandDiscard(entity, cardID, entity.GetTag(hs.TagZonePosition), s.turnNumber())
		}
	case hs.ZoneSecret:
		if controller == s.game.Player.ID {
			s.sink.PlayerSecretPlayed(entity, cardID, s.turnNumber(), hs.Zone(prevValue))
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentSecretPlayed(entity, cardID, entity.GetTag(hs.TagZonePosition), s.turnNumber(), hs.Zone(prevValue), entityID)
		}
	case hs.ZoneDeck:
		entity.Info.Mulliganed = true
		if controller == s.game.Player.ID {
			s.sink.PlayerMulligan(entity, cardID)
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentMulligan(entity, entity.GetTag(hs.TagZonePosition))
		}
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

func (s *Session) zoneChangeFromPlay(entityID, value, prevValue, controller int, cardID string) {
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	switch hs.Zone(value) {
	case hs.ZoneHand:
		entity.Info.Returned = true
		if controller == s.game.Player.ID {
			s.sink.PlayerBackToHand(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentPlayToHand(entity, cardID, s.turnNumber(), entityID)
		}
	case hs.ZoneDeck:
		if controller == s.game.Player.ID {
			s.sink.PlayerPlayToDeck(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentPlayToDeck(entity, cardID, s.turnNumber())
		}
	case hs.ZoneGraveyard:
		if controller == s.game.Player.ID {
			s.sink.PlayerPlayToGraveyard(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			playersTurn := false
			if pe := s.game.PlayerEntity(); pe != nil {
				playersTurn = pe.IsCurrentPlayer()
			}
			s.sink.OpponentPlayToGraveyard(entity, cardID, s.turnNumber(), playersTurn)
		}
	case hs.ZoneRemovedFromGame, hs.ZoneSetAside:
		if controller == s.game.Player.ID {
			s.sink.PlayerRemoveFromPlay(entity, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentRemoveFromPlay(entity, s.turnNumber())
		}
	case hs.ZonePlay:
		// Position shuffles inside PLAY carry no event.
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

func (s *Session) zoneChangeFromSecret(entityID, value, prevValue, controller int, cardID string) {
	switch hs.Zone(value) {
	case hs.ZoneSecret, hs.ZoneGraveyard:
		if controller == s.game.Opponent.ID {
			if entity, ok := s.game.Entities[entityID]; ok {
				s.sink.OpponentSecretTrigger(entity, cardID, s.turnNumber(), entityID)
			}
		}
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

// zoneChangeFromOther handles GRAVEYARD/SETASIDE/REMOVEDFROMGAME/INVALID
// origins. Entities that originally came from the deck are redirected
// through the deck branch: a deck->setaside->hand hop must be reported as
// one deck->hand event.
func (s *Session) zoneChangeFromOther(entityID, value, prevValue, controller int, cardID string) {
	entity, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if entity.Info.OriginalZoneSet && entity.Info.OriginalZone == hs.ZoneDeck && hs.Zone(value) != hs.ZoneDeck {
		entity.Info.Discarded = false
		s.zoneChangeFromDeck(entityID, value, prevValue, controller, cardID)
		return
	}
	entity.Info.Created = true
	switch hs.Zone(value) {
	case hs.ZonePlay:
		if controller == s.game.Player.ID {
			s.sink.PlayerCreateInPlay(entity, cardID, s.turnNumber())
		}
		if controller == s.game.Opponent.ID {
			s.sink.OpponentCreateInPlay(entity, cardID, s.turnNumber())
		}
	case hs.ZoneDeck:
		if controller == s.game.Player.ID {
			if s.joustReveals > 0 {
				return
			}
			s.sink.PlayerGetToDeck(entity, cardID, s.turnNumber())
		}
		if controller == s.game.Opponent.ID {
			if s.joustReveals > 0 {
				return
			}
			s.sink.OpponentGetToDeck(entity, s.turnNumber())
		}
	case hs.ZoneHand:
		if controller == s.game.Player.ID {
			s.sink.PlayerGet(entity, cardID, s.turnNumber())
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentGet(entity, s.turnNumber(), entityID)
		}
	case hs.ZoneSecret:
		if controller == s.game.Player.ID {
			s.sink.PlayerSecretPlayed(entity, cardID, s.turnNumber(), hs.Zone(prevValue))
		} else if controller == s.game.Opponent.ID {
			s.sink.OpponentSecretPlayed(entity, cardID, -1, s.turnNumber(), hs.Zone(prevValue), entityID)
		}
	case hs.ZoneSetAside:
		if controller == s.game.Player.ID {
			s.sink.PlayerCreateInSetAside(entity, s.turnNumber())
		}
		if controller == s.game.Opponent.ID {
			s.sink.OpponentCreateInSetAside(entity, s.turnNumber())
		}
	default:
		s.warnUnhandled(entityID, prevValue, value)
	}
}

func (s *Session) warnUnhandled(entityID, prevValue, value int) {
	s.logger.Warn("unhandled zone change",
		zap.Int("entity", entityID),
		zap.String("from", hs.Zone(prevValue).String()),
		zap.String("to", hs.Zone(value).String()),
	)
}
