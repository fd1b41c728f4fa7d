package events

import (
	"sync"
	"time"
)

// EventType indicates the category of a domain event.
type EventType string

const (
	EventPlayerDraw               EventType = "PLAYER_DRAW"
	EventOpponentDraw             EventType = "OPPONENT_DRAW"
	EventPlayerMulligan           EventType = "PLAYER_MULLIGAN"
	EventOpponentMulligan         EventType = "OPPONENT_MULLIGAN"
	EventPlayerRemoveFromDeck     EventType = "PLAYER_REMOVE_FROM_DECK"
	EventOpponentRemoveFromDeck   EventType = "OPPONENT_REMOVE_FROM_DECK"
	EventPlayerDeckDiscard        EventType = "PLAYER_DECK_DISCARD"
	EventOpponentDeckDiscard      EventType = "OPPONENT_DECK_DISCARD"
	EventPlayerDeckToPlay         EventType = "PLAYER_DECK_TO_PLAY"
	EventOpponentDeckToPlay       EventType = "OPPONENT_DECK_TO_PLAY"
	EventPlayerGetToDeck          EventType = "PLAYER_GET_TO_DECK"
	EventOpponentGetToDeck        EventType = "OPPONENT_GET_TO_DECK"
	EventPlayerPlay               EventType = "PLAYER_PLAY"
	EventOpponentPlay             EventType = "OPPONENT_PLAY"
	EventPlayerHandDiscard        EventType = "PLAYER_HAND_DISCARD"
	EventOpponentHandDiscard      EventType = "OPPONENT_HAND_DISCARD"
	EventPlayerGet                EventType = "PLAYER_GET"
	EventOpponentGet              EventType = "OPPONENT_GET"
	EventPlayerBackToHand         EventType = "PLAYER_BACK_TO_HAND"
	EventOpponentPlayToHand       EventType = "OPPONENT_PLAY_TO_HAND"
	EventPlayerPlayToDeck         EventType = "PLAYER_PLAY_TO_DECK"
	EventOpponentPlayToDeck       EventType = "OPPONENT_PLAY_TO_DECK"
	EventPlayerPlayToGraveyard    EventType = "PLAYER_PLAY_TO_GRAVEYARD"
	EventOpponentPlayToGraveyard  EventType = "OPPONENT_PLAY_TO_GRAVEYARD"
	EventPlayerCreateInPlay       EventType = "PLAYER_CREATE_IN_PLAY"
	EventOpponentCreateInPlay     EventType = "OPPONENT_CREATE_IN_PLAY"
	EventPlayerCreateInSetAside   EventType = "PLAYER_CREATE_IN_SETASIDE"
	EventOpponentCreateInSetAside EventType = "OPPONENT_CREATE_IN_SETASIDE"
	EventPlayerRemoveFromPlay     EventType = "PLAYER_REMOVE_FROM_PLAY"
	EventOpponentRemoveFromPlay   EventType = "OPPONENT_REMOVE_FROM_PLAY"
	EventPlayerStolen             EventType = "PLAYER_STOLEN"
	EventOpponentStolen           EventType = "OPPONENT_STOLEN"
	EventPlayerSecretPlayed       EventType = "PLAYER_SECRET_PLAYED"
	EventOpponentSecretPlayed     EventType = "OPPONENT_SECRET_PLAYED"
	EventOpponentSecretTrigger    EventType = "OPPONENT_SECRET_TRIGGER"
	EventPlayerJoust              EventType = "PLAYER_JOUST"
	EventOpponentJoust            EventType = "OPPONENT_JOUST"
	EventAttackingEntity          EventType = "ATTACKING_ENTITY"
	EventDefendingEntity          EventType = "DEFENDING_ENTITY"
	EventEntityPredamage          EventType = "ENTITY_PREDAMAGE"
	EventTurnsInPlayChange        EventType = "TURNS_IN_PLAY_CHANGE"
	EventPlayerHeroPower          EventType = "PLAYER_HERO_POWER"
	EventOpponentHeroPower        EventType = "OPPONENT_HERO_POWER"
	EventPlayerMinionPlayed       EventType = "PLAYER_MINION_PLAYED"
	EventPlayerFatigue            EventType = "PLAYER_FATIGUE"
	EventOpponentFatigue          EventType = "OPPONENT_FATIGUE"
	EventPlayerHero               EventType = "PLAYER_HERO"
	EventOpponentHero             EventType = "OPPONENT_HERO"
	EventGameEnd                  EventType = "GAME_END"
	EventConcede                  EventType = "CONCEDE"
	EventWin                      EventType = "WIN"
	EventLoss                     EventType = "LOSS"
	EventTied                     EventType = "TIED"
)

// Event is the serializable form of a domain event, suitable for pushing
// over the websocket boundary or recording in tests.
type Event struct {
	Type      EventType `json:"type"`
	EntityID  int       `json:"entityId,omitempty"`
	CardID    string    `json:"cardId,omitempty"`
	Turn      int       `json:"turn,omitempty"`
	Value     int       `json:"value,omitempty"`
	FromZone  string    `json:"fromZone,omitempty"`
	Hero      string    `json:"hero,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Listener is a callback reacting to published events.
type Listener func(Event)

// Bus is a synchronous publish/subscribe fan-out for domain events.
// Publishing happens on the line-dispatch goroutine; listeners run inline
// and must return quickly.
type Bus struct {
	mu         sync.RWMutex
	listeners  map[int]Listener
	nextHandle int
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]Listener)}
}

// Subscribe registers a listener and returns a handle for Unsubscribe.
func (b *Bus) Subscribe(l Listener) int {
	if l == nil {
		return -1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	handle := b.nextHandle
	b.nextHandle++
	b.listeners[handle] = l
	return handle
}

// Unsubscribe removes the listener identified by the handle.
func (b *Bus) Unsubscribe(handle int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, handle)
}

// Publish delivers the event to all listeners synchronously.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, l := range b.listeners {
		l(e)
	}
}
