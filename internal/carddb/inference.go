package carddb

// InferenceSource selects where an inferred card id comes from: a fixed
// token id, the block's target card, or the last card played before the
// block began.
type InferenceSource int

const (
	SourceFixed InferenceSource = iota
	SourceTarget
	SourceLastPlayed
)

// Inference is one card id an effect is known to create without the log
// disclosing it. Count > 1 enqueues the same id multiple times.
type Inference struct {
	Source InferenceSource
	CardID string
	Count  int
}

// triggerInferences covers TRIGGER blocks: deathrattles and secrets that
// put known cards into hidden zones.
var triggerInferences = map[string][]Inference{
	TradePrinceGallywix: {
		{Source: SourceLastPlayed, Count: 1},
		{Source: SourceFixed, CardID: GallywixsCoinToken, Count: 1},
	},
	WhiteEyes:         {{Source: SourceFixed, CardID: TheStormGuardianToken, Count: 1}},
	RaptorHatchling:   {{Source: SourceFixed, CardID: RaptorPatriarchToken, Count: 1}},
	DirehornHatchling: {{Source: SourceFixed, CardID: DirehornMatriarchToken, Count: 1}},
	FrozenClone:       {{Source: SourceTarget, Count: 2}},
	Moorabi:           {{Source: SourceTarget, Count: 1}},
}

// powerInferences covers POWER blocks: battlecries and spells that shuffle
// or generate known cards.
var powerInferences = map[string][]Inference{
	GangUp:               {{Source: SourceTarget, Count: 3}},
	BeneathTheGrounds:    {{Source: SourceFixed, CardID: AmbushToken, Count: 3}},
	IronJuggernaut:       {{Source: SourceFixed, CardID: BurrowingMineToken, Count: 1}},
	Recycle:              {{Source: SourceTarget, Count: 1}},
	ManicSoulcaster:      {{Source: SourceTarget, Count: 1}},
	ForgottenTorch:       {{Source: SourceFixed, CardID: RoaringTorchToken, Count: 1}},
	CurseOfRafaam:        {{Source: SourceFixed, CardID: CursedToken, Count: 1}},
	AncientShade:         {{Source: SourceFixed, CardID: AncientCurseToken, Count: 1}},
	ExcavatedEvil:        {{Source: SourceFixed, CardID: ExcavatedEvil, Count: 1}},
	EliseStarseeker:      {{Source: SourceFixed, CardID: MapToTheGoldenMonkey, Count: 1}},
	MapToTheGoldenMonkey: {{Source: SourceFixed, CardID: GoldenMonkeyToken, Count: 1}},
	Doomcaller:           {{Source: SourceFixed, CardID: Cthun, Count: 1}},
	JadeIdol:             {{Source: SourceFixed, CardID: JadeIdol, Count: 3}},
	QueenCarnassaToken:   {{Source: SourceFixed, CardID: CarnassasBroodToken, Count: 15}},
	EliseTheTrailblazer:  {{Source: SourceFixed, CardID: UngoroPackToken, Count: 1}},
	GhastlyConjurer:      {{Source: SourceFixed, CardID: MirrorImage, Count: 1}},
}

// InferencesFor returns the inference rules for a block of the given type
// started by the given card, nil when the card hides nothing.
func InferencesFor(blockType, cardID string) []Inference {
	switch blockType {
	case "TRIGGER":
		return triggerInferences[cardID]
	case "POWER":
		return powerInferences[cardID]
	}
	return nil
}
