package session

import (
	"strconv"

	"github.com/zippyy/deck-tracker-go/internal/hs"
)

// tagChange parses a raw tag change and applies it.
func (s *Session) tagChange(rawTag string, entityID int, rawValue string, creationTag bool) {
	if entityID <= 0 {
		return
	}
	tag := hs.ParseGameTag(rawTag)
	if tag == hs.TagInvalid {
		return
	}
	value := hs.ParseTagValue(tag, rawValue)
	s.applyTagChange(tag, entityID, value, creationTag)
}

// applyTagChange is the phase-gated dispatcher. The tag value is written to
// the entity's tag map unconditionally so handlers always read current
// state; the side-effecting action is run immediately in the Determined
// phase and queued otherwise. Creation tags are always deferred to the next
// drain so an open creation sequence completes first.
func (s *Session) applyTagChange(tag hs.GameTag, entityID, value int, creationTag bool) {
	entity := s.game.EntityByID(entityID)

	if !s.game.PlayersDetermined() {
		s.determinePlayers(tag, entity, value)
	}

	prevValue := entity.GetTag(tag)
	entity.SetTag(tag, value)

	action := s.findAction(tag, entityID, value, prevValue)
	if action == nil {
		return
	}
	if !s.game.PlayersDetermined() || creationTag {
		s.queuedActions = append(s.queuedActions, action)
		return
	}
	action()
}

// determinePlayers infers the two player ids from the first CONTROLLER tag
// on a hidden in-hand card: cards in hand without a card id belong to the
// opponent, so that controller value is the opponent's id. During a creation
// sequence the ZONE tag may not be applied yet; the zone reported on the
// FULL_ENTITY line covers that window.
func (s *Session) determinePlayers(tag hs.GameTag, entity *hs.Entity, value int) {
	if tag != hs.TagController || value <= 0 {
		return
	}
	inHand := entity.IsInZone(hs.ZoneHand) ||
		(entity.ID == s.currentEntityID && s.currentEntityZone == hs.ZoneHand)
	if !inHand || entity.CardID != "" {
		return
	}
	s.game.SetPlayerIDs(value%2+1, value)
}

// invokeQueuedActions drains the queue in FIFO order for as long as the
// players stay determined. Actions appended while draining run in the same
// pass.
func (s *Session) invokeQueuedActions() {
	for s.game.PlayersDetermined() && len(s.queuedActions) > 0 {
		action := s.queuedActions[0]
		s.queuedActions = s.queuedActions[1:]
		action()
	}
}

func (s *Session) clearQueuedActions() {
	s.queuedActions = nil
}

// findAction maps a changed tag to its handler. Unknown tags have already
// been stored on the entity and need no further action.
func (s *Session) findAction(tag hs.GameTag, entityID, value, prevValue int) func() {
	switch tag {
	case hs.TagZone:
		return func() { s.zoneChange(entityID, value, prevValue) }
	case hs.TagPlaystate:
		return func() { s.playstateChange(entityID, value) }
	case hs.TagCardType:
		return func() { s.cardTypeChange(entityID, value) }
	case hs.TagLastCardPlayed:
		return func() { s.lastCardPlayed = value }
	case hs.TagDefending:
		return func() { s.defendingChange(entityID, value) }
	case hs.TagAttacking:
		return func() { s.attackingChange(entityID, value) }
	case hs.TagNumMinionsPlayedThisTurn:
		return func() { s.numMinionsPlayedChange(value) }
	case hs.TagPredamage:
		return func() { s.predamageChange(entityID, value) }
	case hs.TagNumTurnsInPlay:
		return func() { s.numTurnsInPlayChange(entityID, value) }
	case hs.TagController:
		return func() { s.controllerChange(entityID, prevValue, value) }
	case hs.TagFatigue:
		return func() { s.fatigueChange(entityID, value) }
	case hs.TagStep:
		return func() { s.stepChange() }
	case hs.TagTurn:
		return func() { s.turnChange() }
	case hs.TagState:
		return func() { s.stateChange(value) }
	case hs.TagTransformedFromCard:
		return func() { s.transformedFromCardChange(entityID, value) }
	}
	return nil
}

func (s *Session) transformedFromCardChange(entityID, value int) {
	if value == 0 {
		return
	}
	if e, ok := s.game.Entities[entityID]; ok {
		e.Info.SetOriginalCardID(strconv.Itoa(value))
	}
}

func (s *Session) stateChange(value int) {
	if value != hs.StateComplete {
		return
	}
	s.sink.GameEnd()
	s.gameEnded = true
}

func (s *Session) turnChange() {
	if !s.setupDone || s.game.PlayerEntity() == nil {
		return
	}
	if s.game.PlayerEntity().IsCurrentPlayer() {
		s.playerUsedHeroPower = false
	} else {
		s.opponentUsedHeroPower = false
	}
}

// stepChange observed before setup completes, with the game entity already
// present, means we attached to a game in progress.
func (s *Session) stepChange() {
	if s.setupDone || s.game.GameEntity() == nil {
		return
	}
	s.logger.Info("game was already in progress")
	s.wasInProgress = true
}

func (s *Session) defendingChange(entityID, value int) {
	e, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if value == 1 {
		s.sink.DefendingEntity(e)
	} else {
		s.sink.DefendingEntity(nil)
	}
}

func (s *Session) attackingChange(entityID, value int) {
	e, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if value == 1 {
		s.sink.AttackingEntity(e)
	} else {
		s.sink.AttackingEntity(nil)
	}
}

func (s *Session) numMinionsPlayedChange(value int) {
	if value <= 0 {
		return
	}
	if pe := s.game.PlayerEntity(); pe != nil && pe.IsCurrentPlayer() {
		s.sink.PlayerMinionPlayed()
	}
}

func (s *Session) predamageChange(entityID, value int) {
	if value <= 0 {
		return
	}
	if e, ok := s.game.Entities[entityID]; ok {
		s.sink.EntityPredamage(e, value)
	}
}

func (s *Session) numTurnsInPlayChange(entityID, value int) {
	if value <= 0 {
		return
	}
	if e, ok := s.game.Entities[entityID]; ok {
		s.sink.TurnsInPlayChange(e, s.turnNumber())
	}
}

func (s *Session) fatigueChange(entityID, value int) {
	e, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	switch e.GetTag(hs.TagController) {
	case s.game.Player.ID:
		s.sink.PlayerFatigue(value)
	case s.game.Opponent.ID:
		s.sink.OpponentFatigue(value)
	}
}

// controllerChange records the original controller on first assignment and
// reports steals of on-board or secret entities afterwards.
func (s *Session) controllerChange(entityID, prevValue, value int) {
	e, ok := s.game.Entities[entityID]
	if !ok {
		return
	}
	if prevValue <= 0 {
		e.Info.OriginalController = value
		return
	}
	if e.HasTag(hs.TagPlayerID) {
		return
	}
	inPlayOrSecret := e.IsInZone(hs.ZonePlay) || e.IsInZone(hs.ZoneSecret)
	if !inPlayOrSecret {
		return
	}
	e.Info.Stolen = true
	switch value {
	case s.game.Player.ID:
		s.sink.OpponentStolen(e, e.CardID, s.turnNumber())
	case s.game.Opponent.ID:
		s.sink.PlayerStolen(e, e.CardID, s.turnNumber())
	}
}

func (s *Session) playstateChange(entityID, value int) {
	if hs.PlayState(value) == hs.PlayStateConceded {
		s.sink.Concede()
	}
	if s.gameEnded {
		return
	}
	e, ok := s.game.Entities[entityID]
	if !ok || !e.IsPlayer() {
		return
	}
	switch hs.PlayState(value) {
	case hs.PlayStateWon:
		s.sink.Win()
	case hs.PlayStateLost:
		s.sink.Loss()
	case hs.PlayStateTied:
		s.sink.Tied()
	}
}

func (s *Session) cardTypeChange(entityID, value int) {
	if hs.CardType(value) == hs.CardTypeHero {
		go s.resolveHero(s.ctx, entityID)
	}
}
