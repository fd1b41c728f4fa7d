// Package events defines the boundary between the log-driven reconstruction
// core and its consumers: a sink interface with one method per semantic
// game event, a serializable Event record, and a synchronous bus that fans
// events out to subscribers.
package events

import "github.com/zippyy/deck-tracker-go/internal/hs"

// GameEventSink receives the semantic events reconstructed from the log
// stream. Methods are invoked synchronously, in the exact order the
// triggering lines were observed; implementations must not block the
// caller. Entity pointers remain owned by the session and are only valid
// to read during the call.
type GameEventSink interface {
	// Draw/deck events.
	PlayerDraw(e *hs.Entity, cardID string, turn int)
	OpponentDraw(e *hs.Entity, turn int)
	PlayerMulligan(e *hs.Entity, cardID string)
	OpponentMulligan(e *hs.Entity, zonePos int)
	PlayerRemoveFromDeck(e *hs.Entity, turn int)
	OpponentRemoveFromDeck(e *hs.Entity, turn int)
	PlayerDeckDiscard(e *hs.Entity, cardID string, turn int)
	OpponentDeckDiscard(e *hs.Entity, cardID string, turn int)
	PlayerDeckToPlay(e *hs.Entity, cardID string, turn int)
	OpponentDeckToPlay(e *hs.Entity, cardID string, turn int)
	PlayerGetToDeck(e *hs.Entity, cardID string, turn int)
	OpponentGetToDeck(e *hs.Entity, turn int)

	// Hand events.
	PlayerPlay(e *hs.Entity, cardID string, turn int)
	OpponentPlay(e *hs.Entity, cardID string, fromPos, turn int)
	PlayerHandDiscard(e *hs.Entity, cardID string, turn int)
	OpponentHandDiscard(e *hs.Entity, cardID string, fromPos, turn int)
	PlayerGet(e *hs.Entity, cardID string, turn int)
	OpponentGet(e *hs.Entity, turn, id int)

	// Board events.
	PlayerBackToHand(e *hs.Entity, cardID string, turn int)
	OpponentPlayToHand(e *hs.Entity, cardID string, turn, id int)
	PlayerPlayToDeck(e *hs.Entity, cardID string, turn int)
	OpponentPlayToDeck(e *hs.Entity, cardID string, turn int)
	PlayerPlayToGraveyard(e *hs.Entity, cardID string, turn int)
	OpponentPlayToGraveyard(e *hs.Entity, cardID string, turn int, playersTurn bool)
	PlayerCreateInPlay(e *hs.Entity, cardID string, turn int)
	OpponentCreateInPlay(e *hs.Entity, cardID string, turn int)
	PlayerCreateInSetAside(e *hs.Entity, turn int)
	OpponentCreateInSetAside(e *hs.Entity, turn int)
	PlayerRemoveFromPlay(e *hs.Entity, turn int)
	OpponentRemoveFromPlay(e *hs.Entity, turn int)
	PlayerStolen(e *hs.Entity, cardID string, turn int)
	OpponentStolen(e *hs.Entity, cardID string, turn int)

	// Secrets.
	PlayerSecretPlayed(e *hs.Entity, cardID string, turn int, fromZone hs.Zone)
	OpponentSecretPlayed(e *hs.Entity, cardID string, fromPos, turn int, fromZone hs.Zone, id int)
	OpponentSecretTrigger(e *hs.Entity, cardID string, turn, id int)

	// Reveals and combat.
	PlayerJoust(e *hs.Entity, cardID string, turn int)
	OpponentJoust(e *hs.Entity, cardID string, turn int)
	AttackingEntity(e *hs.Entity)
	DefendingEntity(e *hs.Entity)
	EntityPredamage(e *hs.Entity, value int)
	TurnsInPlayChange(e *hs.Entity, turn int)

	// Hero and turn bookkeeping.
	PlayerHeroPower(cardID string, turn int)
	OpponentHeroPower(cardID string, turn int)
	PlayerMinionPlayed()
	PlayerFatigue(value int)
	OpponentFatigue(value int)
	SetPlayerHero(name string)
	SetOpponentHero(name string)

	// Lifecycle.
	GameEnd()
	Concede()
	Win()
	Loss()
	Tied()
}
