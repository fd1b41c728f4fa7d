// Package session hosts the per-match parsing session: line dispatch, the
// phase-gated tag-change dispatcher, the zone-transition classifier, block
// nesting, and the inference state that reconstructs hidden information.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/carddb"
	"github.com/zippyy/deck-tracker-go/internal/events"
	"github.com/zippyy/deck-tracker-go/internal/hs"
	"github.com/zippyy/deck-tracker-go/internal/powerlog"
)

// ChannelPower is the log channel carrying PowerTaskList output.
const ChannelPower = "Power"

// Session reconstructs match state from one ordered stream of log lines.
// All mutation happens synchronously inside HandleLine; the only concurrent
// reader is the bounded hero-attribution poll, serialized through mu.
type Session struct {
	MatchID uuid.UUID

	game   *hs.Game
	sink   events.GameEventSink
	logger *zap.Logger
	ctx    context.Context

	mu sync.Mutex

	currentEntityID   int
	currentEntityZone hs.Zone

	gameEnded             bool
	setupDone             bool
	wasInProgress         bool
	joustReveals          int
	gameTriggerCount      int
	lastCardPlayed        int
	playerUsedHeroPower   bool
	opponentUsedHeroPower bool

	currentBlock *Block
	maxBlockID   int
	knownCardIDs map[int][]string

	tmpEntities []*tmpEntity

	queuedActions []func()

	// HeroPollInterval paces the background hero-attribution poll.
	HeroPollInterval time.Duration
}

// New creates a session over the given game container. The context bounds
// background hero-attribution polls; cancelling it stops them.
func New(ctx context.Context, game *hs.Game, sink events.GameEventSink, logger *zap.Logger) *Session {
	s := &Session{
		MatchID:          uuid.New(),
		game:             game,
		sink:             sink,
		logger:           logger,
		ctx:              ctx,
		knownCardIDs:     make(map[int][]string),
		HeroPollInterval: 100 * time.Millisecond,
	}
	game.OnPlayersFound = s.onPlayersFound
	return s
}

// Game exposes the underlying game container for read access.
func (s *Session) Game() *hs.Game { return s.game }

// Reset clears all per-match state in preparation for a new match. It is
// idempotent and safe to call between lines at any time.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.MatchID = uuid.New()
	s.game.Reset()
	s.gameEnded = false
	s.setupDone = false
	s.wasInProgress = false
	s.joustReveals = 0
	s.gameTriggerCount = 0
	s.lastCardPlayed = 0
	s.playerUsedHeroPower = false
	s.opponentUsedHeroPower = false
	s.currentEntityID = 0
	s.currentEntityZone = hs.ZoneInvalid
	s.currentBlock = nil
	s.maxBlockID = 0
	s.knownCardIDs = make(map[int][]string)
	s.tmpEntities = nil
	s.clearQueuedActions()
	s.logger.Info("session reset", zap.String("match_id", s.MatchID.String()))
}

// HandleLine routes one log line. Lines from channels other than Power are
// ignored here; GameState debug output is buffered raw, everything else
// goes through the classifier. No error ever propagates to the caller.
func (s *Session) HandleLine(channel, text string) {
	if channel != ChannelPower {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.HasPrefix(text, "GameState.") {
		s.game.PowerLog = append(s.game.PowerLog, text)
		return
	}
	s.handlePowerLine(text)
}

func (s *Session) handlePowerLine(text string) {
	line, ok := powerlog.Classify(text)
	if !ok {
		return
	}
	// A non-creation line means the open creation sequence (if any) is
	// finished; its deferred actions must run before this line's own.
	if line.Kind != powerlog.KindCreationTag {
		s.invokeQueuedActions()
	}
	creationTag := false
	switch line.Kind {
	case powerlog.KindGameEntity:
		e := s.game.EntityByID(line.EntityID)
		e.Name = "GameEntity"
		s.currentEntityID = line.EntityID
		s.invokeQueuedActions()
		return

	case powerlog.KindPlayerEntity:
		e := s.game.EntityByID(line.EntityID)
		if s.wasInProgress {
			e.Name = s.game.StoredPlayerName(line.EntityID)
		}
		s.currentEntityID = line.EntityID
		s.invokeQueuedActions()
		s.game.AccountIDs = append(s.game.AccountIDs, hs.AccountID{Hi: line.AccountHi, Lo: line.AccountLo})
		return

	case powerlog.KindTagChange:
		s.handleTagChangeLine(line)

	case powerlog.KindFullEntity:
		s.handleFullEntity(line)
		return

	case powerlog.KindShowEntity:
		s.handleShowEntity(line)
		return

	case powerlog.KindCreationTag:
		if !line.HideEntity {
			s.tagChange(line.Tag, s.currentEntityID, line.Value, true)
			creationTag = true
		}

	case powerlog.KindEndSpectator:
		s.sink.GameEnd()

	case powerlog.KindBlockStart:
		s.handleBlockStart(line)

	case powerlog.KindCreateGame:
		s.reset()

	case powerlog.KindBlockEnd:
		s.handleBlockEnd()
	}

	if !creationTag {
		s.invokeQueuedActions()
		s.currentEntityID = 0
	}
}

func (s *Session) handleFullEntity(line powerlog.Line) {
	cardID := line.CardID
	if _, exists := s.game.Entities[line.EntityID]; !exists {
		if cardID == "" && hs.ParseZone(line.Zone) != hs.ZoneSetAside {
			if inferred := s.popKnownCardID(); inferred != "" {
				s.logger.Info("inferred card id for hidden entity",
					zap.Int("entity", line.EntityID),
					zap.String("card", inferred),
				)
				cardID = inferred
			}
		}
		e := hs.NewEntity(line.EntityID)
		e.CardID = cardID
		s.game.Entities[line.EntityID] = e
	}
	s.currentEntityID = line.EntityID
	s.invokeQueuedActions()
	s.currentEntityZone = hs.ParseZone(line.Zone)
}

func (s *Session) handleShowEntity(line powerlog.Line) {
	entityID := -1
	if line.Entity.HasID {
		entityID = line.Entity.ID
	}
	if entityID != -1 {
		e := s.game.EntityByID(entityID)
		e.SetCardID(line.CardID)
		s.currentEntityID = entityID
		s.invokeQueuedActions()
	}
	if s.joustReveals > 0 {
		if e, ok := s.game.Entities[entityID]; ok {
			if e.IsControlledBy(s.game.Opponent.ID) {
				s.sink.OpponentJoust(e, line.CardID, s.turnNumber())
			} else if e.IsControlledBy(s.game.Player.ID) {
				s.sink.PlayerJoust(e, line.CardID, s.turnNumber())
			}
		}
	}
}

func (s *Session) handleBlockStart(line powerlog.Line) {
	s.blockStart(line.BlockType)

	switch {
	case line.BlockType == "TRIGGER" || line.BlockType == "POWER":
		s.handleActionStart(line)
	case line.BlockType == "JOUST":
		s.joustReveals = 2
	}
	if s.gameTriggerCount == 0 && line.BlockType == "TRIGGER" && line.Entity.Raw == "GameEntity" {
		s.gameTriggerCount++
	}
}

// handleActionStart inspects the card starting a TRIGGER/POWER block and
// either enqueues inferred card ids against the block, or attributes the
// block to a hero-power activation.
func (s *Session) handleActionStart(line powerlog.Line) {
	cardID := line.Entity.CardID
	if cardID == "" && line.Entity.HasID {
		if e, ok := s.game.Entities[line.Entity.ID]; ok {
			cardID = e.CardID
		}
	}
	if cardID == "" {
		return
	}

	rules := carddb.InferencesFor(line.BlockType, cardID)
	if rules == nil {
		if line.BlockType == "POWER" {
			s.maybeHeroPower(cardID)
		}
		return
	}
	for _, rule := range rules {
		inferred := ""
		switch rule.Source {
		case carddb.SourceFixed:
			inferred = rule.CardID
		case carddb.SourceTarget:
			inferred = line.Target.CardID
		case carddb.SourceLastPlayed:
			if e, ok := s.game.Entities[s.lastCardPlayed]; ok {
				inferred = e.CardID
			}
		}
		s.addKnownCardID(inferred, rule.Count)
	}
}

// maybeHeroPower attributes an anonymous POWER block to a hero power when
// the active player has not used theirs this turn.
func (s *Session) maybeHeroPower(cardID string) {
	if !carddb.IsHeroPower(cardID) {
		return
	}
	playerEntity := s.game.PlayerEntity()
	opponentEntity := s.game.OpponentEntity()
	if playerEntity != nil && playerEntity.IsCurrentPlayer() && !s.playerUsedHeroPower {
		s.sink.PlayerHeroPower(cardID, s.turnNumber())
		s.playerUsedHeroPower = true
	} else if opponentEntity != nil && opponentEntity.IsCurrentPlayer() && !s.opponentUsedHeroPower {
		s.sink.OpponentHeroPower(cardID, s.turnNumber())
		s.opponentUsedHeroPower = true
	}
}

func (s *Session) handleBlockEnd() {
	if s.gameTriggerCount < 10 {
		if ge := s.game.GameEntity(); ge != nil && ge.HasTag(hs.TagTurn) {
			s.gameTriggerCount += 10
			s.invokeQueuedActions()
			s.setupDone = true
		}
	}
	if s.currentBlock != nil && s.currentBlock.Type == "JOUST" {
		// Drain anything that might still depend on JoustReveals before
		// clearing the counter.
		s.invokeQueuedActions()
		s.joustReveals = 0
	}
	s.blockEnd()
}

// turnNumber derives the 1-based turn number, 0 until mulligan completes.
func (s *Session) turnNumber() int {
	if !s.game.IsMulliganDone() {
		return 0
	}
	ge := s.game.GameEntity()
	if ge == nil {
		return 0
	}
	return (ge.GetTag(hs.TagTurn) + 1) / 2
}
