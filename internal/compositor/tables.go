package compositor

import "github.com/MikeSquared-Agency/replymate/internal/analyzer"

// openers lists candidate lead-ins per tone. Only the first is used today.
var openers = map[Tone][]string{
	ToneNeutral: {
		"Thanks for the message.",
		"A quick reply:",
	},
	ToneWarm: {
		"Thank you for sharing this. I understand how you feel.",
		"First of all, thank you for being honest.",
	},
	ToneConfident: {
		"Let me say it clearly:",
		"So we don't waste time:",
	},
	ToneApologetic: {
		"Sorry if I misunderstood something.",
		"I apologize for the delay.",
	},
	ToneFunny: {
		"Ok, drama off, espresso on ☕:",
		"If this were tennis, we'd be heading into a tie-break:",
	},
}

var empathy = map[analyzer.Vibe]string{
	analyzer.VibeConflict:  "I understand this bothered you and that you're angry. I'd like to sort it out constructively.",
	analyzer.VibeSensitive: "I can see this means a lot to you and that it hurt. Please take my reply as an honest attempt to understand.",
	analyzer.VibeUrgency:   "I saw that this is urgent, so I'm answering directly and briefly.",
}

var goalTemplates = map[Goal]string{
	GoalCalm:       "I suggest we take a step back: I'll briefly explain my view, and you tell me if I missed something.",
	GoalSchedule:   "We can pick a time: today after 5pm or tomorrow between 9 and 12? If neither works, suggest another.",
	GoalBoundaries: "To be clear: I respect you, but I need clear boundaries – I don't accept insults or pressure. If we continue, let it be respectful.",
	GoalClarify:    "Could you please tell me what exactly bothered or interests you most? Two or three points would help me.",
	GoalSales:      "To sum up the offer in one line: you deliver X, we guarantee Y within Z. If you like, I'll send a short PDF with prices.",
	GoalFlirt:      "I like your style. If you're up for it, coffee or tea sometime? Totally relaxed, no expectations.",
	GoalDisengage:  "So we don't beat around the bush: I think it's better if we each go our own way. I wish you all the best.",
}

const (
	fallbackGoalTemplate = "Tell me what matters most to you here, and I'll adapt to that."
	followupBlock        = "If I overlooked anything, please tell me in 1-2 sentences."
	questionAddendum     = "Addendum: is there anything I can clarify in 1-2 sentences?"
)

var fragmentLimits = map[Length]int{
	LengthShort:  2,
	LengthMedium: 4,
}
