package objective

// Closed vocabularies for the objective mini-language. These lists are
// configuration handed down from the randomizer's balance tables, not
// inferred logic; keep them in sync with the generator when it grows
// new objective targets.

var questTags = makeSet(
	// Selector tags
	"free", "gated", "late", "go",
	// Forge the Masamune
	"repairmasamune", "masamune", "masa", "forge",
	// Charge the Moonstone
	"chargemoon", "moon", "moonstone",
	"arris",
	"jerky",
	// Death Peak
	"deathpeak", "death",
	"denadoro",
	// Epoch flight
	"epoch", "flight", "epochflight",
	"factory", "factoryruins",
	"geno", "genodome",
	"claw", "giantsclaw",
	"heckran", "heckranscave", "heckrancave",
	"kingstrial", "shard", "shardtrial", "prismshard",
	"cathedral", "cath", "manoria",
	"woe", "mtwoe",
	"ocean", "oceanpalace",
	"ozzie", "fort", "ozziefort", "ozziesfort",
	"pendant", "pendanttrial",
	"reptite", "reptitelair",
	"sunpalace", "sun",
	"desert", "sunkendesert",
	"zealthrone", "zealpalace", "golemspot",
	"zenan", "bridge", "zenanbridge",
	"tyrano", "blacktyrano", "tyranolair",
	"magus", "maguscastle",
	"omengiga", "gigamutant", "gigaspot",
	"omenterra", "terramutant", "terraspot",
	"flea", "magusflea",
	"slash", "magusslash",
	"omenelder", "elderspawn", "elderspot",
	"twinboss", "twingolem", "twinspot",
	"cyrus", "nr", "northernruins",
	"johnny", "johnnyrace",
	"fairrace", "fairbet",
	"soda", "drink",
)

var bossNames = makeSet(
	"any", "go", "nogo",
	"atropos", "atroposxr",
	"dalton", "daltonplus", "dalton+",
	"dragontank", "dtank",
	"elderspawn", "elder",
	"flea", "fleaplus", "flea+",
	"gigagaia", "gg", "gigamutant",
	"golem", "bossgolem", "golemboss",
	"guardian", "heckran",
	"lavosspawn",
	"magusnc", "ncmagus",
	"masamune", "masa&mune",
	"megamutant", "motherbrain", "mudimp",
	"nizbel", "nizbel2", "nizbelii",
	"rseries", "retinite",
	"rusty", "rusttyrano",
	"slash", "superslash",
	"sos", "sonofsun",
	"terramutant", "twinboss",
	"yakra", "yakraxiii", "yakra13",
	"zombor",
)

var recruitSlots = makeSet(
	"any", "gated",
	"crono", "marle", "lucca", "robo", "frog", "ayla", "magus",
	"castle", "dactyl", "proto", "burrow",
	"1", "2", "3", "4", "5",
)

// aliases maps display names shown in the objective dropdown to their
// stored objective strings. Lookup is case-insensitive.
var aliases = map[string]string{
	"random":                  "65:quest_gated, 30:boss_nogo, 15:recruit_gated",
	"random gated quest":      "quest_gated",
	"random hard quest":       "quest_late",
	"random go mode quest":    "quest_go",
	"random boss (incl. go mode dungeons)": "boss_any",
	"random boss from go mode dungeon":     "boss_go",
	"random character recruit":             "recruit_gated",
	"defeat the black tyrano":  "quest_tyrano",
	"forge the masamune":       "quest_forge",
	"collect 3 rocks":          "collect_3_rocks",
	"collect 10 fragments":     "collect_10_fragments_10",
}

// Aliases returns the display-name to objective-string table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

func makeSet(values ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}
