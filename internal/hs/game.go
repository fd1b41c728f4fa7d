package hs

// AccountID is the hi/lo pair identifying a player account in the log.
type AccountID struct {
	Hi uint64
	Lo uint64
}

// Player is one of the two player slots of a match. ID is the in-match
// player id (1 or 2) once determined, 0 before that. Name and Class may be
// supplied from outside the log stream (e.g. a process-memory mirror) and
// are used to resolve name-keyed entity references.
type Player struct {
	ID    int
	Name  string
	Class string
}

// Game is the per-match entity graph plus the two player slots. It is
// exclusively owned by one parsing session and never accessed concurrently.
type Game struct {
	Entities   map[int]*Entity
	Player     Player
	Opponent   Player
	AccountIDs []AccountID

	// PowerLog collects raw GameState.DebugPrintPower lines for replay
	// upload; they are buffered, not parsed.
	PowerLog []string

	// OnPlayersFound fires once both player ids are positive.
	OnPlayersFound func()

	storedPlayerNames map[int]string
}

// NewGame creates an empty game container.
func NewGame() *Game {
	return &Game{
		Entities:          make(map[int]*Entity),
		storedPlayerNames: make(map[int]string),
	}
}

// Reset clears all per-match state. Player names survive a reset so a
// resumed game can restore them; ids do not.
func (g *Game) Reset() {
	for id, e := range g.Entities {
		if e.IsPlayer() && e.Name != "" {
			g.storedPlayerNames[id] = e.Name
		}
	}
	g.Entities = make(map[int]*Entity)
	g.AccountIDs = nil
	g.PowerLog = g.PowerLog[:0]
	g.Player.ID = 0
	g.Opponent.ID = 0
	g.Player.Class = ""
	g.Opponent.Class = ""
}

// EntityByID returns the entity, creating it on first reference.
func (g *Game) EntityByID(id int) *Entity {
	e, ok := g.Entities[id]
	if !ok {
		e = NewEntity(id)
		g.Entities[id] = e
	}
	return e
}

// GameEntity returns the singleton game entity, nil if not seen yet.
func (g *Game) GameEntity() *Entity {
	for _, e := range g.Entities {
		if e.Name == "GameEntity" {
			return e
		}
	}
	return nil
}

// PlayerEntity returns the entity whose PLAYER_ID matches the local player.
func (g *Game) PlayerEntity() *Entity {
	return g.playerEntityByID(g.Player.ID)
}

// OpponentEntity returns the entity whose PLAYER_ID matches the opponent.
func (g *Game) OpponentEntity() *Entity {
	return g.playerEntityByID(g.Opponent.ID)
}

func (g *Game) playerEntityByID(playerID int) *Entity {
	if playerID <= 0 {
		return nil
	}
	for _, e := range g.Entities {
		if e.HasTag(TagPlayerID) && e.GetTag(TagPlayerID) == playerID {
			return e
		}
	}
	return nil
}

// PlayerEntities returns up to two entities carrying a PLAYER_ID tag, in
// ascending entity-id order so resolution heuristics are deterministic.
func (g *Game) PlayerEntities() []*Entity {
	var players []*Entity
	for _, e := range g.Entities {
		if e.HasTag(TagPlayerID) {
			players = append(players, e)
		}
	}
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if players[j].ID < players[i].ID {
				players[i], players[j] = players[j], players[i]
			}
		}
	}
	if len(players) > 2 {
		players = players[:2]
	}
	return players
}

// EntityByName returns the entity with the given name, nil if none.
func (g *Game) EntityByName(name string) *Entity {
	for _, e := range g.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// StoredPlayerName returns the player name remembered from before the last
// reset, used when re-attaching to a game already in progress.
func (g *Game) StoredPlayerName(id int) string {
	return g.storedPlayerNames[id]
}

// SetPlayerIDs records both player ids and fires OnPlayersFound. It is a
// no-op if the ids were already determined.
func (g *Game) SetPlayerIDs(player, opponent int) {
	if g.PlayersDetermined() || player <= 0 || opponent <= 0 {
		return
	}
	g.Player.ID = player
	g.Opponent.ID = opponent
	if g.OnPlayersFound != nil {
		g.OnPlayersFound()
	}
}

// PlayersDetermined reports whether both player ids are known.
func (g *Game) PlayersDetermined() bool {
	return g.Player.ID > 0 && g.Opponent.ID > 0
}

// IsMulliganDone reports whether both players completed their mulligan.
func (g *Game) IsMulliganDone() bool {
	player := g.PlayerEntity()
	opponent := g.OpponentEntity()
	if player == nil || opponent == nil {
		return false
	}
	return player.GetTag(TagMulliganState) == MulliganDone &&
		opponent.GetTag(TagMulliganState) == MulliganDone
}
