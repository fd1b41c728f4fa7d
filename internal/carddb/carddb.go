package carddb

// Card is the subset of card data the tracker consumes.
type Card struct {
	ID   string
	Name string
	Type string
}

// cards is the embedded card table. The real client ships a full database
// asset; the tracker only needs the cards its heuristics inspect, plus the
// base heroes and hero powers for attribution.
var cards = map[string]Card{
	// Base heroes.
	"HERO_01": {ID: "HERO_01", Name: "Garrosh Hellscream", Type: "Hero"},
	"HERO_02": {ID: "HERO_02", Name: "Thrall", Type: "Hero"},
	"HERO_03": {ID: "HERO_03", Name: "Valeera Sanguinar", Type: "Hero"},
	"HERO_04": {ID: "HERO_04", Name: "Uther Lightbringer", Type: "Hero"},
	"HERO_05": {ID: "HERO_05", Name: "Rexxar", Type: "Hero"},
	"HERO_06": {ID: "HERO_06", Name: "Malfurion Stormrage", Type: "Hero"},
	"HERO_07": {ID: "HERO_07", Name: "Gul'dan", Type: "Hero"},
	"HERO_08": {ID: "HERO_08", Name: "Jaina Proudmoore", Type: "Hero"},
	"HERO_09": {ID: "HERO_09", Name: "Anduin Wrynn", Type: "Hero"},

	// Base hero powers.
	"CS2_102":  {ID: "CS2_102", Name: "Armor Up!", Type: "Hero Power"},
	"CS2_049":  {ID: "CS2_049", Name: "Totemic Call", Type: "Hero Power"},
	"CS2_083b": {ID: "CS2_083b", Name: "Dagger Mastery", Type: "Hero Power"},
	"CS2_101":  {ID: "CS2_101", Name: "Reinforce", Type: "Hero Power"},
	"DS1h_292": {ID: "DS1h_292", Name: "Steady Shot", Type: "Hero Power"},
	"CS2_017":  {ID: "CS2_017", Name: "Shapeshift", Type: "Hero Power"},
	"CS2_056":  {ID: "CS2_056", Name: "Life Tap", Type: "Hero Power"},
	"CS2_034":  {ID: "CS2_034", Name: "Fireblast", Type: "Hero Power"},
	"CS1h_001": {ID: "CS1h_001", Name: "Lesser Heal", Type: "Hero Power"},

	// Cards the inference rules key on.
	TradePrinceGallywix:  {ID: TradePrinceGallywix, Name: "Trade Prince Gallywix", Type: "Minion"},
	WhiteEyes:            {ID: WhiteEyes, Name: "White Eyes", Type: "Minion"},
	RaptorHatchling:      {ID: RaptorHatchling, Name: "Raptor Hatchling", Type: "Minion"},
	DirehornHatchling:    {ID: DirehornHatchling, Name: "Direhorn Hatchling", Type: "Minion"},
	FrozenClone:          {ID: FrozenClone, Name: "Frozen Clone", Type: "Minion"},
	Moorabi:              {ID: Moorabi, Name: "Moorabi", Type: "Minion"},
	GangUp:               {ID: GangUp, Name: "Gang Up", Type: "Spell"},
	BeneathTheGrounds:    {ID: BeneathTheGrounds, Name: "Beneath the Grounds", Type: "Spell"},
	IronJuggernaut:       {ID: IronJuggernaut, Name: "Iron Juggernaut", Type: "Minion"},
	Recycle:              {ID: Recycle, Name: "Recycle", Type: "Spell"},
	ManicSoulcaster:      {ID: ManicSoulcaster, Name: "Manic Soulcaster", Type: "Minion"},
	ForgottenTorch:       {ID: ForgottenTorch, Name: "Forgotten Torch", Type: "Spell"},
	CurseOfRafaam:        {ID: CurseOfRafaam, Name: "Curse of Rafaam", Type: "Spell"},
	AncientShade:         {ID: AncientShade, Name: "Ancient Shade", Type: "Minion"},
	ExcavatedEvil:        {ID: ExcavatedEvil, Name: "Excavated Evil", Type: "Spell"},
	EliseStarseeker:      {ID: EliseStarseeker, Name: "Elise Starseeker", Type: "Minion"},
	Doomcaller:           {ID: Doomcaller, Name: "Doomcaller", Type: "Minion"},
	JadeIdol:             {ID: JadeIdol, Name: "Jade Idol", Type: "Spell"},
	EliseTheTrailblazer:  {ID: EliseTheTrailblazer, Name: "Elise the Trailblazer", Type: "Minion"},
	GhastlyConjurer:      {ID: GhastlyConjurer, Name: "Ghastly Conjurer", Type: "Minion"},
	MirrorImage:          {ID: MirrorImage, Name: "Mirror Image", Type: "Spell"},
	MapToTheGoldenMonkey: {ID: MapToTheGoldenMonkey, Name: "Map to the Golden Monkey", Type: "Spell"},
	QueenCarnassaToken:   {ID: QueenCarnassaToken, Name: "Queen Carnassa", Type: "Minion"},
}

// GetCard looks up a card by id. The zero Card is returned for unknown ids,
// never an error; an unknown card simply disables the heuristics that would
// have inspected it.
func GetCard(id string) Card {
	return cards[id]
}

// HeroNameFromID returns the hero's display name for a hero card id, or the
// raw id when the card is not in the table, so attribution still reports
// something identifiable.
func HeroNameFromID(id string) string {
	if c, ok := cards[id]; ok && c.Type == "Hero" {
		return c.Name
	}
	return id
}

// IsHeroPower reports whether the card id names a hero power.
func IsHeroPower(id string) bool {
	return cards[id].Type == "Hero Power"
}
