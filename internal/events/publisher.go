package events

import (
	"time"

	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/hs"
)

// Publisher converts sink calls into Event records and publishes them on a
// Bus. It is the canonical GameEventSink implementation; loggers, websocket
// broadcasters and repositories subscribe to the bus instead of
// implementing the full interface.
type Publisher struct {
	bus    *Bus
	logger *zap.Logger
}

// NewPublisher creates a publisher emitting onto the given bus.
func NewPublisher(bus *Bus, logger *zap.Logger) *Publisher {
	return &Publisher{bus: bus, logger: logger}
}

// Bus returns the underlying bus.
func (p *Publisher) Bus() *Bus { return p.bus }

func (p *Publisher) emit(e Event) {
	e.Timestamp = time.Now()
	p.logger.Debug("game event",
		zap.String("type", string(e.Type)),
		zap.Int("entity", e.EntityID),
		zap.String("card", e.CardID),
		zap.Int("turn", e.Turn),
	)
	p.bus.Publish(e)
}

func entityID(e *hs.Entity) int {
	if e == nil {
		return 0
	}
	return e.ID
}

func (p *Publisher) PlayerDraw(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerDraw, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentDraw(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventOpponentDraw, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerMulligan(e *hs.Entity, cardID string) {
	p.emit(Event{Type: EventPlayerMulligan, EntityID: entityID(e), CardID: cardID})
}

func (p *Publisher) OpponentMulligan(e *hs.Entity, zonePos int) {
	p.emit(Event{Type: EventOpponentMulligan, EntityID: entityID(e), Value: zonePos})
}

func (p *Publisher) PlayerRemoveFromDeck(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventPlayerRemoveFromDeck, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) OpponentRemoveFromDeck(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventOpponentRemoveFromDeck, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerDeckDiscard(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerDeckDiscard, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentDeckDiscard(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentDeckDiscard, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerDeckToPlay(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerDeckToPlay, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentDeckToPlay(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentDeckToPlay, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerGetToDeck(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerGetToDeck, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentGetToDeck(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventOpponentGetToDeck, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerPlay(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerPlay, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentPlay(e *hs.Entity, cardID string, fromPos, turn int) {
	p.emit(Event{Type: EventOpponentPlay, EntityID: entityID(e), CardID: cardID, Value: fromPos, Turn: turn})
}

func (p *Publisher) PlayerHandDiscard(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerHandDiscard, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentHandDiscard(e *hs.Entity, cardID string, fromPos, turn int) {
	p.emit(Event{Type: EventOpponentHandDiscard, EntityID: entityID(e), CardID: cardID, Value: fromPos, Turn: turn})
}

func (p *Publisher) PlayerGet(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerGet, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentGet(e *hs.Entity, turn, id int) {
	p.emit(Event{Type: EventOpponentGet, EntityID: id, Turn: turn})
}

func (p *Publisher) PlayerBackToHand(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerBackToHand, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentPlayToHand(e *hs.Entity, cardID string, turn, id int) {
	p.emit(Event{Type: EventOpponentPlayToHand, EntityID: id, CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerPlayToDeck(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerPlayToDeck, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentPlayToDeck(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentPlayToDeck, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerPlayToGraveyard(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerPlayToGraveyard, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentPlayToGraveyard(e *hs.Entity, cardID string, turn int, playersTurn bool) {
	p.emit(Event{Type: EventOpponentPlayToGraveyard, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerCreateInPlay(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerCreateInPlay, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentCreateInPlay(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentCreateInPlay, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerCreateInSetAside(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventPlayerCreateInSetAside, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) OpponentCreateInSetAside(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventOpponentCreateInSetAside, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerRemoveFromPlay(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventPlayerRemoveFromPlay, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) OpponentRemoveFromPlay(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventOpponentRemoveFromPlay, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerStolen(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerStolen, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentStolen(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentStolen, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerSecretPlayed(e *hs.Entity, cardID string, turn int, fromZone hs.Zone) {
	p.emit(Event{Type: EventPlayerSecretPlayed, EntityID: entityID(e), CardID: cardID, Turn: turn, FromZone: fromZone.String()})
}

func (p *Publisher) OpponentSecretPlayed(e *hs.Entity, cardID string, fromPos, turn int, fromZone hs.Zone, id int) {
	p.emit(Event{Type: EventOpponentSecretPlayed, EntityID: id, CardID: cardID, Turn: turn, FromZone: fromZone.String()})
}

func (p *Publisher) OpponentSecretTrigger(e *hs.Entity, cardID string, turn, id int) {
	p.emit(Event{Type: EventOpponentSecretTrigger, EntityID: id, CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerJoust(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventPlayerJoust, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentJoust(e *hs.Entity, cardID string, turn int) {
	p.emit(Event{Type: EventOpponentJoust, EntityID: entityID(e), CardID: cardID, Turn: turn})
}

func (p *Publisher) AttackingEntity(e *hs.Entity) {
	p.emit(Event{Type: EventAttackingEntity, EntityID: entityID(e)})
}

func (p *Publisher) DefendingEntity(e *hs.Entity) {
	p.emit(Event{Type: EventDefendingEntity, EntityID: entityID(e)})
}

func (p *Publisher) EntityPredamage(e *hs.Entity, value int) {
	p.emit(Event{Type: EventEntityPredamage, EntityID: entityID(e), Value: value})
}

func (p *Publisher) TurnsInPlayChange(e *hs.Entity, turn int) {
	p.emit(Event{Type: EventTurnsInPlayChange, EntityID: entityID(e), Turn: turn})
}

func (p *Publisher) PlayerHeroPower(cardID string, turn int) {
	p.emit(Event{Type: EventPlayerHeroPower, CardID: cardID, Turn: turn})
}

func (p *Publisher) OpponentHeroPower(cardID string, turn int) {
	p.emit(Event{Type: EventOpponentHeroPower, CardID: cardID, Turn: turn})
}

func (p *Publisher) PlayerMinionPlayed() {
	p.emit(Event{Type: EventPlayerMinionPlayed})
}

func (p *Publisher) PlayerFatigue(value int) {
	p.emit(Event{Type: EventPlayerFatigue, Value: value})
}

func (p *Publisher) OpponentFatigue(value int) {
	p.emit(Event{Type: EventOpponentFatigue, Value: value})
}

func (p *Publisher) SetPlayerHero(name string) {
	p.emit(Event{Type: EventPlayerHero, Hero: name})
}

func (p *Publisher) SetOpponentHero(name string) {
	p.emit(Event{Type: EventOpponentHero, Hero: name})
}

func (p *Publisher) GameEnd() {
	p.emit(Event{Type: EventGameEnd})
}

func (p *Publisher) Concede() {
	p.emit(Event{Type: EventConcede})
}

func (p *Publisher) Win() {
	p.emit(Event{Type: EventWin})
}

func (p *Publisher) Loss() {
	p.emit(Event{Type: EventLoss})
}

func (p *Publisher) Tied() {
	p.emit(Event{Type: EventTied})
}
