package events

import "github.com/zippyy/deck-tracker-go/internal/hs"

// NullSink is a GameEventSink that discards everything. It backs tests and
// any wiring that runs the reconstruction core without consumers.
type NullSink struct{}

var _ GameEventSink = NullSink{}

func (NullSink) PlayerDraw(*hs.Entity, string, int)                           {}
func (NullSink) OpponentDraw(*hs.Entity, int)                                 {}
func (NullSink) PlayerMulligan(*hs.Entity, string)                            {}
func (NullSink) OpponentMulligan(*hs.Entity, int)                             {}
func (NullSink) PlayerRemoveFromDeck(*hs.Entity, int)                         {}
func (NullSink) OpponentRemoveFromDeck(*hs.Entity, int)                       {}
func (NullSink) PlayerDeckDiscard(*hs.Entity, string, int)                    {}
func (NullSink) OpponentDeckDiscard(*hs.Entity, string, int)                  {}
func (NullSink) PlayerDeckToPlay(*hs.Entity, string, int)                     {}
func (NullSink) OpponentDeckToPlay(*hs.Entity, string, int)                   {}
func (NullSink) PlayerGetToDeck(*hs.Entity, string, int)                      {}
func (NullSink) OpponentGetToDeck(*hs.Entity, int)                            {}
func (NullSink) PlayerPlay(*hs.Entity, string, int)                           {}
func (NullSink) OpponentPlay(*hs.Entity, string, int, int)                    {}
func (NullSink) PlayerHandDiscard(*hs.Entity, string, int)                    {}
func (NullSink) OpponentHandDiscard(*hs.Entity, string, int, int)             {}
func (NullSink) PlayerGet(*hs.Entity, string, int)                            {}
func (NullSink) OpponentGet(*hs.Entity, int, int)                             {}
func (NullSink) PlayerBackToHand(*hs.Entity, string, int)                     {}
func (NullSink) OpponentPlayToHand(*hs.Entity, string, int, int)              {}
func (NullSink) PlayerPlayToDeck(*hs.Entity, string, int)                     {}
func (NullSink) OpponentPlayToDeck(*hs.Entity, string, int)                   {}
func (NullSink) PlayerPlayToGraveyard(*hs.Entity, string, int)                {}
func (NullSink) OpponentPlayToGraveyard(*hs.Entity, string, int, bool)        {}
func (NullSink) PlayerCreateInPlay(*hs.Entity, string, int)                   {}
func (NullSink) OpponentCreateInPlay(*hs.Entity, string, int)                 {}
func (NullSink) PlayerCreateInSetAside(*hs.Entity, int)                       {}
func (NullSink) OpponentCreateInSetAside(*hs.Entity, int)                     {}
func (NullSink) PlayerRemoveFromPlay(*hs.Entity, int)                         {}
func (NullSink) OpponentRemoveFromPlay(*hs.Entity, int)                       {}
func (NullSink) PlayerStolen(*hs.Entity, string, int)                         {}
func (NullSink) OpponentStolen(*hs.Entity, string, int)                       {}
func (NullSink) PlayerSecretPlayed(*hs.Entity, string, int, hs.Zone)          {}
func (NullSink) OpponentSecretPlayed(*hs.Entity, string, int, int, hs.Zone, int) {}
func (NullSink) OpponentSecretTrigger(*hs.Entity, string, int, int)           {}
func (NullSink) PlayerJoust(*hs.Entity, string, int)                          {}
func (NullSink) OpponentJoust(*hs.Entity, string, int)                        {}
func (NullSink) AttackingEntity(*hs.Entity)                                   {}
func (NullSink) DefendingEntity(*hs.Entity)                                   {}
func (NullSink) EntityPredamage(*hs.Entity, int)                              {}
func (NullSink) TurnsInPlayChange(*hs.Entity, int)                            {}
func (NullSink) PlayerHeroPower(string, int)                                  {}
func (NullSink) OpponentHeroPower(string, int)                                {}
func (NullSink) PlayerMinionPlayed()                                          {}
func (NullSink) PlayerFatigue(int)                                            {}
func (NullSink) OpponentFatigue(int)                                          {}
func (NullSink) SetPlayerHero(string)                                         {}
func (NullSink) SetOpponentHero(string)                                       {}
func (NullSink) GameEnd()                                                     {}
func (NullSink) Concede()                                                     {}
func (NullSink) Win()                                                         {}
func (NullSink) Loss()                                                        {}
func (NullSink) Tied()                                                        {}
