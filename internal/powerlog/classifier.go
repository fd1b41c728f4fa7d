// Package powerlog classifies raw Power.log lines into typed line events.
// Classification is regex-table driven, matching the shapes the client's
// PowerTaskList debug output emits; lines matching no recognized shape are
// not an error, they simply produce no event.
package powerlog

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the recognized shape of a log line.
type Kind int

const (
	KindNone Kind = iota
	KindGameEntity
	KindPlayerEntity
	KindTagChange
	KindFullEntity
	KindShowEntity
	KindCreationTag
	KindBlockStart
	KindBlockEnd
	KindCreateGame
	KindEndSpectator
)

var (
	gameEntityRegex   = regexp.MustCompile(`GameEntity EntityID=(\d+)`)
	playerEntityRegex = regexp.MustCompile(`Player EntityID=(\d+) PlayerID=(\d+) GameAccountId=\[hi=(\d+) lo=(\d+)\]`)
	tagChangeRegex    = regexp.MustCompile(`TAG_CHANGE Entity=(.+) tag=(\w+) value=(\w+)`)
	creatingRegex     = regexp.MustCompile(`FULL_ENTITY - Creating ID=(\d+) CardID=(\w*)`)
	updatingRegex     = regexp.MustCompile(`FULL_ENTITY - Updating.*id=(\d+).*zone=(\w+).*CardID=(\w*)`)
	showEntityRegex   = regexp.MustCompile(`(?:SHOW_ENTITY|CHANGE_ENTITY) - Updating Entity=(.+) CardID=(\w*)`)
	creationTagRegex  = regexp.MustCompile(`tag=(\w+) value=(\w+)`)
	blockStartRegex   = regexp.MustCompile(`BLOCK_START BlockType=(\w+) Entity=(.+?) EffectCardId=.* Target=(.+)`)

	entityIDRegex     = regexp.MustCompile(`\[.*\bid=(\d+)`)
	entityNameRegex   = regexp.MustCompile(`\[(?:entityName|name)=(.+?) id=`)
	entityZoneRegex   = regexp.MustCompile(`\bzone=(\w+)`)
	entityCardIDRegex = regexp.MustCompile(`cardId=(\w+)`)
)

// EntityRef is a raw entity reference from a line: either a bracketed
// descriptor (name/id/zone/cardId), a bare integer id, or a bare name.
type EntityRef struct {
	Raw    string
	ID     int
	HasID  bool
	Name   string
	Zone   string
	CardID string
}

// ParseEntityRef decodes a raw entity reference.
func ParseEntityRef(raw string) EntityRef {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "UNKNOWN ENTITY ", ""))
	ref := EntityRef{Raw: raw}
	if strings.HasPrefix(raw, "[") {
		if m := entityIDRegex.FindStringSubmatch(raw); m != nil {
			ref.ID, _ = strconv.Atoi(m[1])
			ref.HasID = true
		}
		if m := entityNameRegex.FindStringSubmatch(raw); m != nil {
			ref.Name = m[1]
		}
		if m := entityZoneRegex.FindStringSubmatch(raw); m != nil {
			ref.Zone = m[1]
		}
		if m := entityCardIDRegex.FindStringSubmatch(raw); m != nil {
			ref.CardID = m[1]
		}
		return ref
	}
	if id, err := strconv.Atoi(raw); err == nil {
		ref.ID = id
		ref.HasID = true
		return ref
	}
	ref.Name = raw
	return ref
}

// Line is one classified log line. Only the fields relevant to its Kind are
// populated.
type Line struct {
	Kind Kind

	// KindGameEntity, KindPlayerEntity, KindFullEntity.
	EntityID int

	// KindPlayerEntity.
	PlayerID  int
	AccountHi uint64
	AccountLo uint64

	// KindTagChange, KindShowEntity, KindBlockStart.
	Entity EntityRef

	// KindTagChange, KindCreationTag.
	Tag   string
	Value string

	// KindCreationTag: HIDE_ENTITY needs different handling downstream and
	// must not be applied as a regular creation tag.
	HideEntity bool

	// KindFullEntity, KindShowEntity.
	CardID string
	Zone   string

	// KindBlockStart.
	BlockType string
	Target    EntityRef
}

// Classify maps one text line to zero or one line event. The bool result
// is false for unrecognized shapes. Malformed numeric fields abandon the
// line (treated as unrecognized).
func Classify(text string) (Line, bool) {
	if m := gameEntityRegex.FindStringSubmatch(text); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}, false
		}
		return Line{Kind: KindGameEntity, EntityID: id}, true
	}
	if m := playerEntityRegex.FindStringSubmatch(text); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}, false
		}
		playerID, _ := strconv.Atoi(m[2])
		hi, _ := strconv.ParseUint(m[3], 10, 64)
		lo, _ := strconv.ParseUint(m[4], 10, 64)
		return Line{Kind: KindPlayerEntity, EntityID: id, PlayerID: playerID, AccountHi: hi, AccountLo: lo}, true
	}
	if m := tagChangeRegex.FindStringSubmatch(text); m != nil {
		return Line{
			Kind:   KindTagChange,
			Entity: ParseEntityRef(m[1]),
			Tag:    m[2],
			Value:  m[3],
		}, true
	}
	if m := creatingRegex.FindStringSubmatch(text); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}, false
		}
		return Line{Kind: KindFullEntity, EntityID: id, CardID: m[2]}, true
	}
	if m := updatingRegex.FindStringSubmatch(text); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			return Line{}, false
		}
		return Line{Kind: KindFullEntity, EntityID: id, Zone: m[2], CardID: m[3]}, true
	}
	if m := showEntityRegex.FindStringSubmatch(text); m != nil {
		return Line{Kind: KindShowEntity, Entity: ParseEntityRef(m[1]), CardID: m[2]}, true
	}
	if strings.Contains(text, "End Spectator") {
		return Line{Kind: KindEndSpectator}, true
	}
	if strings.Contains(text, "CREATE_GAME") {
		return Line{Kind: KindCreateGame}, true
	}
	if strings.Contains(text, "BLOCK_START") {
		line := Line{Kind: KindBlockStart}
		if m := blockStartRegex.FindStringSubmatch(text); m != nil {
			line.BlockType = m[1]
			line.Entity = ParseEntityRef(m[2])
			line.Target = ParseEntityRef(m[3])
		}
		return line, true
	}
	if strings.Contains(text, "BLOCK_END") {
		return Line{Kind: KindBlockEnd}, true
	}
	if m := creationTagRegex.FindStringSubmatch(text); m != nil {
		return Line{
			Kind:       KindCreationTag,
			Tag:        m[1],
			Value:      m[2],
			HideEntity: strings.Contains(text, "HIDE_ENTITY"),
		}, true
	}
	return Line{}, false
}
