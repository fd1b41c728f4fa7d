package hs

// EntityInfo holds information derived while tracking an entity, as opposed
// to tags reported by the game engine itself.
type EntityInfo struct {
	// OriginalZone is the first non-transient zone the entity was observed
	// in. Zero means not yet known; OriginalZoneSet distinguishes a genuine
	// INVALID origin from "never seen".
	OriginalZone       Zone
	OriginalZoneSet    bool
	OriginalController int
	OriginalCardID     string

	Created    bool
	Discarded  bool
	Stolen     bool
	Mulliganed bool
	Returned   bool

	LastZoneChangeTurn int
}

// SetOriginalCardID records the card the entity transformed from. Only the
// first transform is kept; later transforms chain back to the same origin.
func (i *EntityInfo) SetOriginalCardID(cardID string) {
	if i.OriginalCardID != "" {
		return
	}
	i.OriginalCardID = cardID
}

// Entity is one in-match object (minion, hero, card instance, player),
// identified by a stable integer id assigned by the game engine.
type Entity struct {
	ID     int
	Name   string
	CardID string
	Tags   map[GameTag]int
	Info   EntityInfo
}

// NewEntity creates an entity with an empty tag set.
func NewEntity(id int) *Entity {
	return &Entity{ID: id, Tags: make(map[GameTag]int)}
}

// GetTag returns the tag value, 0 if unset.
func (e *Entity) GetTag(tag GameTag) int {
	return e.Tags[tag]
}

// HasTag reports whether the tag is set to a non-zero value.
func (e *Entity) HasTag(tag GameTag) bool {
	return e.Tags[tag] > 0
}

// SetTag stores a tag value unconditionally.
func (e *Entity) SetTag(tag GameTag, value int) {
	e.Tags[tag] = value
}

// SetCardID assigns the card identifier. An entity's card id is set once
// from empty; a change afterwards is a transformation, which records the
// previous id on Info before overwriting.
func (e *Entity) SetCardID(cardID string) {
	if cardID == "" || cardID == e.CardID {
		return
	}
	if e.CardID != "" {
		e.Info.SetOriginalCardID(e.CardID)
	}
	e.CardID = cardID
}

// IsInZone reports whether the entity's ZONE tag matches the given zone.
func (e *Entity) IsInZone(zone Zone) bool {
	return Zone(e.GetTag(TagZone)) == zone
}

// IsControlledBy reports whether the entity's CONTROLLER tag matches.
func (e *Entity) IsControlledBy(controller int) bool {
	return e.GetTag(TagController) == controller
}

// IsPlayer reports whether this is one of the two player entities.
func (e *Entity) IsPlayer() bool {
	return e.HasTag(TagPlayerID)
}

// IsHero reports whether the entity is a hero card.
func (e *Entity) IsHero() bool {
	return CardType(e.GetTag(TagCardType)) == CardTypeHero
}

// IsHeroPower reports whether the entity is a hero power.
func (e *Entity) IsHeroPower() bool {
	return CardType(e.GetTag(TagCardType)) == CardTypeHeroPower
}

// IsGame reports whether this is the singleton game entity.
func (e *Entity) IsGame() bool {
	return CardType(e.GetTag(TagCardType)) == CardTypeGame
}

// IsCurrentPlayer reports whether the CURRENT_PLAYER tag is set.
func (e *Entity) IsCurrentPlayer() bool {
	return e.HasTag(TagCurrentPlayer)
}
