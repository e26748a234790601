package analyzer

import (
	"strings"
	"unicode/utf8"
)

const (
	uppercaseBurstMin = 4
	heavyExclaimAbove = 3
	ellipsis          = "…"
)

// Analyzer runs one Profile over transcripts. It holds no mutable state and
// is safe for concurrent use.
type Analyzer struct {
	profile Profile
}

func New(p Profile) *Analyzer {
	return &Analyzer{profile: p}
}

var (
	full    = New(FullProfile)
	reduced = New(ReducedProfile)
)

// Analyze runs the live, full-fidelity analysis.
func Analyze(transcript string) Result {
	return full.Analyze(transcript)
}

// AnalyzeReduced runs the reduced pass used to pick a reply opener.
func AnalyzeReduced(transcript string) Result {
	return reduced.Analyze(transcript)
}

func (a *Analyzer) Profile() Profile {
	return a.profile
}

// Analyze never fails and is deterministic for a given transcript.
func (a *Analyzer) Analyze(transcript string) Result {
	lower := strings.ToLower(transcript)
	m := measure(transcript)

	s := Signals{
		Anger:     a.score(SignalAnger, lower),
		Sadness:   a.score(SignalSadness, lower),
		Affection: a.score(SignalAffection, lower),
		Urgency:   a.score(SignalUrgency, lower),
	}
	if a.profile.StructuralAnger {
		s.Anger += m.UppercaseBurstCount
		if m.ExclaimCount > heavyExclaimAbove {
			s.Anger++
		}
	}
	if m.HasQuestion {
		s.Question = 1
	}

	return Result{
		Metrics:  m,
		Signals:  s,
		Vibe:     classify(s),
		RedFlags: a.redFlags(transcript, m, s),
		Summary:  summarize(transcript, a.profile.SummaryLines, a.profile.SummaryChars),
	}
}

// score counts lexicon terms present in lower. Each term counts at most once.
func (a *Analyzer) score(sig Signal, lower string) int {
	hits := 0
	for _, term := range a.profile.Lexicons[sig] {
		if strings.Contains(lower, term) {
			hits++
			if a.profile.Saturate {
				break
			}
		}
	}
	if a.profile.Saturate && hits > 0 {
		return a.profile.Weights[sig]
	}
	return hits
}

// classify applies the fixed priority order; the first match wins.
func classify(s Signals) Vibe {
	switch {
	case s.Anger >= 2:
		return VibeConflict
	case s.Sadness >= 1:
		return VibeSensitive
	case s.Affection >= 1:
		return VibeAffection
	case s.Urgency >= 1:
		return VibeUrgency
	default:
		return VibeNeutral
	}
}

func (a *Analyzer) redFlags(text string, m Metrics, s Signals) []RedFlag {
	flags := make([]RedFlag, 0, len(a.profile.FlagOrder))
	seen := make(map[RedFlag]bool, len(a.profile.FlagOrder))
	for _, f := range a.profile.FlagOrder {
		if seen[f] {
			continue
		}
		var hit bool
		switch f {
		case FlagConflict:
			hit = s.Anger >= 2
		case FlagTooLong:
			hit = m.LengthChars > a.profile.TooLongAt
		case FlagFinancial:
			hit = a.profile.Financial != nil && a.profile.Financial.MatchString(text)
		}
		if hit {
			seen[f] = true
			flags = append(flags, f)
		}
	}
	return flags
}

func measure(text string) Metrics {
	m := Metrics{
		LengthChars: utf8.RuneCountInString(text),
		LineCount:   strings.Count(text, "\n") + 1,
		HasQuestion: strings.Contains(text, "?"),
	}

	run := 0
	for _, r := range text {
		switch {
		case r == '!':
			m.ExclaimCount++
		case r >= 0x1F300 && r <= 0x1FAFF:
			m.EmojiCount++
		}
		if isBurstUpper(r) {
			run++
			continue
		}
		if run >= uppercaseBurstMin {
			m.UppercaseBurstCount++
		}
		run = 0
	}
	if run >= uppercaseBurstMin {
		m.UppercaseBurstCount++
	}
	return m
}

func isBurstUpper(r rune) bool {
	return (r >= 'A' && r <= 'Z') || r == 'Č' || r == 'Š' || r == 'Ž'
}

// summarize keeps the last n lines of the trimmed text, joined by spaces and
// cut to maxRunes.
func summarize(text string, n, maxRunes int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	joined := strings.Join(lines, " ")
	if utf8.RuneCountInString(joined) <= maxRunes {
		return joined
	}
	runes := []rune(joined)
	return string(runes[:maxRunes]) + ellipsis
}
