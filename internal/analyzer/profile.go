package analyzer

import "regexp"

// Profile parameterizes an analyzer pass. The live display uses FullProfile;
// the reply compositor only needs a vibe and uses ReducedProfile.
type Profile struct {
	Name     string
	Lexicons map[Signal][]string

	// Saturate collapses each lexicon to a single condition: any hit scores
	// the signal's weight, otherwise zero.
	Saturate bool
	Weights  map[Signal]int

	// StructuralAnger adds uppercase bursts and heavy exclamation to anger.
	StructuralAnger bool

	TooLongAt    int
	Financial    *regexp.Regexp
	SummaryLines int
	SummaryChars int
	FlagOrder    []RedFlag
}

var FullProfile = Profile{
	Name: "full",
	Lexicons: map[Signal][]string{
		SignalAnger: {
			"jezen", "noro", "kurc", "butelj", "kdo si", "zajeb", "razje", "jeza",
			"grdo", "ignoriraš", "zakaj me ignoriraš", "banalno", "lažeš", "nateg",
			"angry", "furious", "idiot", "you liar", "ignoring me", "pissed",
		},
		SignalSadness: {
			"žalosten", "žal mi je", "pogrešam", "sam", "osamljen", "jok", "srce",
			"razhod", "ločitev",
			"i'm sad", "i miss", "lonely", "crying", "heartbroken", "breakup", "divorce",
		},
		SignalAffection: {
			"ljubim", "rad te imam", "objem", "poljub", "gaja", "srček", "draga", "dragi",
			"love you", "hug you", "hugs", "kiss", "sweetheart", "darling",
		},
		SignalUrgency: {
			"nujno", "zdej", "takoj", "deadline", "zadnji rok", "danes",
			"urgent", "asap", "right now", "immediately",
		},
	},
	StructuralAnger: true,
	TooLongAt:       1600,
	Financial:       regexp.MustCompile(`(?i)\b(denar|posodi|račun|iban|geslo|money|loan|bank account|password)\b`),
	SummaryLines:    8,
	SummaryChars:    240,
	FlagOrder:       []RedFlag{FlagConflict, FlagTooLong, FlagFinancial},
}

var ReducedProfile = Profile{
	Name: "reduced",
	Lexicons: map[Signal][]string{
		SignalAnger: {
			"idiot", "butelj", "kurc", "zajeb", "jezen", "grd", "ignoriraš", "kriv", "sovražim",
			"angry", "hate you",
		},
		SignalSadness: {
			"žal", "pogrešam", "sam", "osamljen", "jok", "srce", "razhod", "ločitev",
			"miss you", "lonely", "crying",
		},
		SignalAffection: {
			"ljubim", "rad te imam", "objem", "poljub", "draga", "dragi",
			"love you", "kiss",
		},
		SignalUrgency: {
			"nujno", "takoj", "zadnji rok", "danes",
			"urgent", "asap",
		},
	},
	Saturate: true,
	Weights: map[Signal]int{
		SignalAnger:     2,
		SignalSadness:   1,
		SignalAffection: 1,
		SignalUrgency:   1,
	},
	TooLongAt:    2000,
	Financial:    regexp.MustCompile(`(?i)\b(iban|geslo|pin|kartica|nakazilo|posodi|password|card number|wire transfer)\b`),
	SummaryLines: 6,
	SummaryChars: 220,
	FlagOrder:    []RedFlag{FlagConflict, FlagFinancial, FlagTooLong},
}
