// Package carddb carries the static card data the tracker needs: the cards
// whose effects are known to create hidden entities, hero identification,
// and a small lookup table standing in for the full card database asset.
package carddb

// Collectible card ids referenced by the inference rules.
const (
	TradePrinceGallywix = "GVG_028"
	WhiteEyes           = "CFM_324"
	RaptorHatchling     = "UNG_914"
	DirehornHatchling   = "UNG_957"
	FrozenClone         = "ICC_082"
	Moorabi             = "ICC_289"
	GangUp              = "BRM_007"
	BeneathTheGrounds   = "AT_035"
	IronJuggernaut      = "GVG_056"
	Recycle             = "GVG_031"
	ManicSoulcaster     = "CFM_660"
	ForgottenTorch      = "LOE_002"
	CurseOfRafaam       = "LOE_007"
	AncientShade        = "LOE_110"
	ExcavatedEvil       = "LOE_111"
	EliseStarseeker     = "LOE_079"
	Doomcaller          = "OG_255"
	JadeIdol            = "CFM_602"
	EliseTheTrailblazer = "UNG_079"
	GhastlyConjurer     = "ICC_069"
	MirrorImage         = "CS2_027"
)

// Uncollectible tokens those effects are known to create.
const (
	GallywixsCoinToken     = "GVG_028t"
	TheStormGuardianToken  = "CFM_324t"
	RaptorPatriarchToken   = "UNG_914t1"
	DirehornMatriarchToken = "UNG_957t1"
	AmbushToken            = "AT_035t"
	BurrowingMineToken     = "GVG_056t"
	RoaringTorchToken      = "LOE_002t"
	CursedToken            = "LOE_007t"
	AncientCurseToken      = "LOE_110t"
	MapToTheGoldenMonkey   = "LOE_019t"
	GoldenMonkeyToken      = "LOE_019t2"
	Cthun                  = "OG_280"
	QueenCarnassaToken     = "UNG_920t1"
	CarnassasBroodToken    = "UNG_920t2"
	UngoroPackToken        = "UNG_079t1"
)
