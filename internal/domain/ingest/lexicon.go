package ingest

// valence maps lowercase tokens to polarity scores in [-5, 5], AFINN style.
// Trimmed to the vocabulary that actually shows up in translated news
// transcripts.
var valence = map[string]float64{
	"abandon":      -2,
	"abuse":        -3,
	"accident":     -2,
	"accuse":       -2,
	"achieve":      2,
	"admire":       3,
	"advantage":    2,
	"afraid":       -2,
	"aggressive":   -2,
	"agree":        1,
	"alarm":        -2,
	"alert":        -1,
	"amazing":      4,
	"anger":        -3,
	"angry":        -3,
	"anxious":      -2,
	"apology":      -1,
	"appreciate":   2,
	"approve":      2,
	"arrest":       -2,
	"attack":       -1,
	"award":        3,
	"awful":        -3,
	"bad":          -3,
	"ban":          -2,
	"battle":       -1,
	"beautiful":    3,
	"benefit":      2,
	"best":         3,
	"betray":       -3,
	"blame":        -2,
	"block":        -1,
	"bomb":         -1,
	"boost":        2,
	"brave":        2,
	"breach":       -2,
	"bright":       1,
	"brilliant":    4,
	"broken":       -1,
	"calm":         2,
	"cancel":       -1,
	"care":         2,
	"catastrophe":  -3,
	"celebrate":    3,
	"chaos":        -2,
	"charge":       -2,
	"cheer":        2,
	"clash":        -2,
	"clean":        2,
	"collapse":     -2,
	"comfort":      2,
	"commit":       1,
	"concern":      -2,
	"condemn":      -2,
	"confident":    2,
	"conflict":     -2,
	"congratulate": 2,
	"corrupt":      -3,
	"courage":      2,
	"crash":        -2,
	"crime":        -3,
	"crisis":       -3,
	"critic":       -2,
	"cruel":        -3,
	"cry":          -1,
	"damage":       -3,
	"danger":       -2,
	"dead":         -3,
	"death":        -2,
	"debt":         -2,
	"defeat":       -2,
	"defend":       1,
	"delay":        -1,
	"delight":      3,
	"demand":       -1,
	"deny":         -2,
	"destroy":      -3,
	"die":          -3,
	"difficult":    -1,
	"dirty":        -2,
	"disaster":     -3,
	"dispute":      -2,
	"disrupt":      -2,
	"doubt":        -1,
	"dream":        1,
	"drop":         -1,
	"drought":      -2,
	"easy":         1,
	"emergency":    -2,
	"encourage":    2,
	"enemy":        -2,
	"enjoy":        2,
	"escape":       -1,
	"evil":         -3,
	"excellent":    3,
	"excited":      3,
	"fail":         -2,
	"failure":      -2,
	"fair":         2,
	"fake":         -3,
	"famous":       2,
	"fear":         -2,
	"fight":        -1,
	"fine":         2,
	"fire":         -2,
	"flood":        -2,
	"fraud":        -4,
	"free":         1,
	"friendly":     2,
	"fun":          4,
	"gain":         2,
	"generous":     2,
	"gift":         2,
	"glad":         3,
	"good":         3,
	"grateful":     3,
	"great":        3,
	"grief":        -2,
	"grow":         1,
	"guilty":       -3,
	"happy":        3,
	"harm":         -2,
	"hate":         -3,
	"heal":         2,
	"help":         2,
	"hero":         2,
	"honest":       2,
	"honor":        2,
	"hope":         2,
	"hopeful":      2,
	"hostile":      -2,
	"hurt":         -2,
	"ill":          -2,
	"illegal":      -3,
	"improve":      2,
	"injure":       -2,
	"innocent":     2,
	"inspire":      2,
	"interesting":  2,
	"jail":         -2,
	"join":         1,
	"joy":          3,
	"justice":      2,
	"kill":         -3,
	"kind":         2,
	"laugh":        1,
	"launch":       1,
	"lie":          -2,
	"lose":         -3,
	"loss":         -3,
	"love":         3,
	"lucky":        3,
	"mislead":      -3,
	"miss":         -2,
	"mistake":      -2,
	"murder":       -2,
	"nice":         3,
	"noble":        2,
	"opportunity":  2,
	"optimistic":   2,
	"pain":         -2,
	"panic":        -3,
	"peace":        2,
	"perfect":      3,
	"popular":      3,
	"positive":     2,
	"poverty":      -1,
	"praise":       3,
	"pride":        2,
	"prison":       -2,
	"problem":      -2,
	"progress":     2,
	"promise":      1,
	"promote":      1,
	"protect":      1,
	"protest":      -2,
	"proud":        2,
	"punish":       -2,
	"reform":       1,
	"refuse":       -2,
	"regret":       -2,
	"reject":       -1,
	"relief":       1,
	"rescue":       2,
	"resign":       -1,
	"respect":      2,
	"rich":         2,
	"riot":         -3,
	"risk":         -2,
	"robust":       2,
	"sad":          -2,
	"safe":         1,
	"save":         2,
	"scandal":      -3,
	"scare":        -2,
	"secure":       2,
	"shame":        -2,
	"share":        1,
	"shock":        -2,
	"shoot":        -1,
	"sick":         -2,
	"smart":        1,
	"smile":        2,
	"solution":     1,
	"sorry":        -1,
	"steal":        -2,
	"stop":         -1,
	"strength":     2,
	"strike":       -1,
	"strong":       2,
	"succeed":      3,
	"success":      2,
	"suffer":       -2,
	"support":      2,
	"sweet":        2,
	"terrible":     -3,
	"terror":       -3,
	"thank":        2,
	"threat":       -2,
	"tragedy":      -2,
	"trouble":      -2,
	"trust":        1,
	"ugly":         -3,
	"unemployment": -2,
	"unfair":       -2,
	"united":       1,
	"victory":      3,
	"violence":     -3,
	"war":          -2,
	"warn":         -2,
	"waste":        -1,
	"weak":         -2,
	"wealth":       3,
	"welcome":      2,
	"win":          4,
	"wonderful":    4,
	"worry":        -3,
	"worst":        -3,
	"wrong":        -2,
}
