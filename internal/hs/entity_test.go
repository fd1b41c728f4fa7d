package hs

import "testing"

func TestEntityTags(t *testing.T) {
	e := NewEntity(4)

	if e.HasTag(TagZone) {
		t.Error("Expected no ZONE tag on a fresh entity")
	}
	if e.GetTag(TagZone) != 0 {
		t.Error("Expected unset tag to read as 0")
	}

	e.SetTag(TagZone, int(ZoneHand))
	if !e.IsInZone(ZoneHand) {
		t.Error("Expected entity to be in HAND")
	}

	e.SetTag(TagController, 2)
	if !e.IsControlledBy(2) {
		t.Error("Expected entity to be controlled by player 2")
	}
}

func TestEntityKindPredicates(t *testing.T) {
	e := NewEntity(5)
	e.SetTag(TagCardType, int(CardTypeHero))
	if !e.IsHero() || e.IsHeroPower() || e.IsGame() {
		t.Error("Expected hero card type predicates to match HERO only")
	}

	e.SetTag(TagCardType, int(CardTypeHeroPower))
	if !e.IsHeroPower() {
		t.Error("Expected IsHeroPower after CARDTYPE change")
	}

	p := NewEntity(2)
	p.SetTag(TagPlayerID, 1)
	if !p.IsPlayer() {
		t.Error("Expected PLAYER_ID tag to mark a player entity")
	}
}

func TestSetCardIDRecordsTransformOrigin(t *testing.T) {
	e := NewEntity(10)

	e.SetCardID("")
	if e.CardID != "" {
		t.Error("Expected empty card id to be ignored")
	}

	e.SetCardID("CS2_029")
	if e.CardID != "CS2_029" || e.Info.OriginalCardID != "" {
		t.Error("Expected first assignment without a transform record")
	}

	// Same id again is not a transformation.
	e.SetCardID("CS2_029")
	if e.Info.OriginalCardID != "" {
		t.Error("Expected re-assignment of the same id to record nothing")
	}

	e.SetCardID("EX1_246")
	if e.CardID != "EX1_246" {
		t.Errorf("Expected card id EX1_246, got %s", e.CardID)
	}
	if e.Info.OriginalCardID != "CS2_029" {
		t.Errorf("Expected original card id CS2_029, got %s", e.Info.OriginalCardID)
	}

	// A second transform keeps the first origin.
	e.SetCardID("CS2_mirror")
	if e.Info.OriginalCardID != "CS2_029" {
		t.Errorf("Expected original card id to stay CS2_029, got %s", e.Info.OriginalCardID)
	}
}
