package hs

import "strconv"

// GameTag identifies a named integer attribute the game engine tracks per
// entity. Values mirror the client's own tag enumeration; only the tags the
// tracker acts on are listed, everything else round-trips through the
// entity's tag map untouched.
type GameTag int

const (
	TagInvalid                  GameTag = 0
	TagTurn                     GameTag = 20
	TagStep                     GameTag = 39
	TagPlayerID                 GameTag = 30
	TagPlaystate                GameTag = 17
	TagCurrentPlayer            GameTag = 23
	TagFirstPlayer              GameTag = 24
	TagResourcesUsed            GameTag = 25
	TagResources                GameTag = 26
	TagHeroEntity               GameTag = 27
	TagState                    GameTag = 45
	TagZone                     GameTag = 49
	TagController               GameTag = 50
	TagCardType                 GameTag = 202
	TagMulliganState            GameTag = 500
	TagZonePosition             GameTag = 263
	TagAttacking                GameTag = 267
	TagDefending                GameTag = 266
	TagFatigue                  GameTag = 1086
	TagPredamage                GameTag = 410
	TagCreator                  GameTag = 313
	TagNumTurnsInPlay           GameTag = 680
	TagNumMinionsPlayedThisTurn GameTag = 417
	TagLastCardPlayed           GameTag = 397
	TagTransformedFromCard      GameTag = 843
)

var tagNames = map[string]GameTag{
	"TURN":                         TagTurn,
	"STEP":                         TagStep,
	"PLAYER_ID":                    TagPlayerID,
	"PLAYSTATE":                    TagPlaystate,
	"CURRENT_PLAYER":               TagCurrentPlayer,
	"FIRST_PLAYER":                 TagFirstPlayer,
	"RESOURCES_USED":               TagResourcesUsed,
	"RESOURCES":                    TagResources,
	"HERO_ENTITY":                  TagHeroEntity,
	"STATE":                        TagState,
	"ZONE":                         TagZone,
	"CONTROLLER":                   TagController,
	"CARDTYPE":                     TagCardType,
	"MULLIGAN_STATE":               TagMulliganState,
	"ZONE_POSITION":                TagZonePosition,
	"ATTACKING":                    TagAttacking,
	"DEFENDING":                    TagDefending,
	"FATIGUE":                      TagFatigue,
	"PREDAMAGE":                    TagPredamage,
	"CREATOR":                      TagCreator,
	"NUM_TURNS_IN_PLAY":            TagNumTurnsInPlay,
	"NUM_MINIONS_PLAYED_THIS_TURN": TagNumMinionsPlayedThisTurn,
	"LAST_CARD_PLAYED":             TagLastCardPlayed,
	"TRANSFORMED_FROM_CARD":        TagTransformedFromCard,
}

// ParseGameTag maps a tag name from the log to its GameTag. Numeric tag
// names (the client logs unknown tags by number) parse to their raw value.
func ParseGameTag(name string) GameTag {
	if tag, ok := tagNames[name]; ok {
		return tag
	}
	if n, err := strconv.Atoi(name); err == nil {
		return GameTag(n)
	}
	return TagInvalid
}

// Zone is a logical location an entity occupies.
type Zone int

const (
	ZoneInvalid         Zone = 0
	ZonePlay            Zone = 1
	ZoneDeck            Zone = 2
	ZoneHand            Zone = 3
	ZoneGraveyard       Zone = 4
	ZoneRemovedFromGame Zone = 5
	ZoneSetAside        Zone = 6
	ZoneSecret          Zone = 7
)

var zoneNames = map[string]Zone{
	"INVALID":         ZoneInvalid,
	"PLAY":            ZonePlay,
	"DECK":            ZoneDeck,
	"HAND":            ZoneHand,
	"GRAVEYARD":       ZoneGraveyard,
	"REMOVEDFROMGAME": ZoneRemovedFromGame,
	"SETASIDE":        ZoneSetAside,
	"SECRET":          ZoneSecret,
}

func (z Zone) String() string {
	switch z {
	case ZonePlay:
		return "PLAY"
	case ZoneDeck:
		return "DECK"
	case ZoneHand:
		return "HAND"
	case ZoneGraveyard:
		return "GRAVEYARD"
	case ZoneRemovedFromGame:
		return "REMOVEDFROMGAME"
	case ZoneSetAside:
		return "SETASIDE"
	case ZoneSecret:
		return "SECRET"
	default:
		return "INVALID"
	}
}

// ParseZone maps a zone name from the log to its Zone value.
func ParseZone(name string) Zone {
	return zoneNames[name]
}

// PlayState values an entity's PLAYSTATE tag can take.
type PlayState int

const (
	PlayStateInvalid    PlayState = 0
	PlayStatePlaying    PlayState = 1
	PlayStateWinning    PlayState = 2
	PlayStateLosing     PlayState = 3
	PlayStateWon        PlayState = 4
	PlayStateLost       PlayState = 5
	PlayStateTied       PlayState = 6
	PlayStateDisconnect PlayState = 7
	PlayStateConceded   PlayState = 8
)

var playStateNames = map[string]PlayState{
	"PLAYING":    PlayStatePlaying,
	"WINNING":    PlayStateWinning,
	"LOSING":     PlayStateLosing,
	"WON":        PlayStateWon,
	"LOST":       PlayStateLost,
	"TIED":       PlayStateTied,
	"DISCONNECT": PlayStateDisconnect,
	"CONCEDED":   PlayStateConceded,
}

// CardType values an entity's CARDTYPE tag can take.
type CardType int

const (
	CardTypeInvalid   CardType = 0
	CardTypeGame      CardType = 1
	CardTypePlayer    CardType = 2
	CardTypeHero      CardType = 3
	CardTypeMinion    CardType = 4
	CardTypeSpell     CardType = 5
	CardTypeEnchant   CardType = 6
	CardTypeWeapon    CardType = 7
	CardTypeItem      CardType = 8
	CardTypeToken     CardType = 9
	CardTypeHeroPower CardType = 10
)

var cardTypeNames = map[string]CardType{
	"GAME":        CardTypeGame,
	"PLAYER":      CardTypePlayer,
	"HERO":        CardTypeHero,
	"MINION":      CardTypeMinion,
	"SPELL":       CardTypeSpell,
	"ENCHANTMENT": CardTypeEnchant,
	"WEAPON":      CardTypeWeapon,
	"ITEM":        CardTypeItem,
	"TOKEN":       CardTypeToken,
	"HERO_POWER":  CardTypeHeroPower,
}

// GameState values the game entity's STATE tag can take.
const (
	StateInvalid  = 0
	StateLoading  = 1
	StateRunning  = 2
	StateComplete = 3
)

var stateNames = map[string]int{
	"INVALID":  StateInvalid,
	"LOADING":  StateLoading,
	"RUNNING":  StateRunning,
	"COMPLETE": StateComplete,
}

// Step values of the game entity's STEP tag.
const (
	StepInvalid       = 0
	StepBeginFirst    = 1
	StepBeginShuffle  = 2
	StepBeginDraw     = 3
	StepBeginMulligan = 4
	StepMainBegin     = 5
	StepMainReady     = 6
	StepFinalWrapup   = 13
	StepFinalGameover = 14
)

var stepNames = map[string]int{
	"INVALID":        StepInvalid,
	"BEGIN_FIRST":    StepBeginFirst,
	"BEGIN_SHUFFLE":  StepBeginShuffle,
	"BEGIN_DRAW":     StepBeginDraw,
	"BEGIN_MULLIGAN": StepBeginMulligan,
	"MAIN_BEGIN":     StepMainBegin,
	"MAIN_READY":     StepMainReady,
	"FINAL_WRAPUP":   StepFinalWrapup,
	"FINAL_GAMEOVER": StepFinalGameover,
}

// Mulligan states of a player entity's MULLIGAN_STATE tag.
const (
	MulliganInvalid = 0
	MulliganInput   = 1
	MulliganDealing = 2
	MulliganWaiting = 3
	MulliganDone    = 4
)

var mulliganNames = map[string]int{
	"INVALID": MulliganInvalid,
	"INPUT":   MulliganInput,
	"DEALING": MulliganDealing,
	"WAITING": MulliganWaiting,
	"DONE":    MulliganDone,
}

// ParseTagValue converts a raw tag value from the log to its integer form.
// Enum-valued tags arrive by name (value=PLAY), everything else as a number.
// A value that parses neither way yields 0, which matches the engine's own
// treatment of an unset tag.
func ParseTagValue(tag GameTag, raw string) int {
	switch tag {
	case TagZone:
		if z, ok := zoneNames[raw]; ok {
			return int(z)
		}
	case TagPlaystate:
		if ps, ok := playStateNames[raw]; ok {
			return int(ps)
		}
	case TagCardType:
		if ct, ok := cardTypeNames[raw]; ok {
			return int(ct)
		}
	case TagState:
		if s, ok := stateNames[raw]; ok {
			return s
		}
	case TagStep:
		if s, ok := stepNames[raw]; ok {
			return s
		}
	case TagMulliganState:
		if m, ok := mulliganNames[raw]; ok {
			return m
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
