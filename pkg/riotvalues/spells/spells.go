package spellvalues

// Smite marks the jungler.
const Smite = 11

// Spell is a summoner spell reference.
type Spell struct {
	Key  string
	Name string
	Icon string
}

var Spells = map[int]Spell{
	21: {Key: "Barrier", Name: "Barrier", Icon: "spell/SummonerBarrier.png"},
	1:  {Key: "Boost", Name: "Cleanse", Icon: "spell/SummonerBoost.png"},
	14: {Key: "Dot", Name: "Ignite", Icon: "spell/SummonerIgnite.png"},
	3:  {Key: "Exhaust", Name: "Exhaust", Icon: "spell/SummonerExhaust.png"},
	7:  {Key: "Heal", Name: "Heal", Icon: "spell/SummonerHeal.png"},
	4:  {Key: "Flash", Name: "Flash", Icon: "spell/SummonerFlash.png"},
	11: {Key: "Smite", Name: "Smite", Icon: "spell/SummonerSmite.png"},
	12: {Key: "Teleport", Name: "Teleport", Icon: "spell/SummonerTeleport.png"},
	6:  {Key: "Ghost", Name: "Ghost", Icon: "spell/SummonerHaste.png"},
	13: {Key: "Clarity", Name: "Clarity", Icon: "spell/SummonerMana.png"},
}
