package quiz

// Question slots, in the order the site presents them.
const (
	QuestionLocation     = "q1"
	QuestionIntent       = "q2"
	QuestionAvailability = "q3"
	QuestionInvestment   = "q4"
	QuestionTimeline     = "q5"
)

var QuestionIDs = []string{
	QuestionLocation,
	QuestionIntent,
	QuestionAvailability,
	QuestionInvestment,
	QuestionTimeline,
}

type Option struct {
	Letter string
	Label  string
}

type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// Questions mirrors the copy shown on the site. The labels double as the
// values synced to the CRM (full answer text, not letters).
var Questions = []Question{
	{
		ID:     QuestionLocation,
		Prompt: "Where are you located?",
		Options: []Option{
			{"A", "South Florida (Miami to Palm Beach)"},
			{"B", "Elsewhere in Florida"},
			{"C", "Outside Florida"},
		},
	},
	{
		ID:     QuestionIntent,
		Prompt: "What are you looking for?",
		Options: []Option{
			{"A", "A life partner"},
			{"B", "A serious, committed relationship"},
			{"C", "I'm not sure yet"},
			{"D", "Casual dating"},
		},
	},
	{
		ID:     QuestionAvailability,
		Prompt: "How much time can you give the process?",
		Options: []Option{
			{"A", "Whatever it takes"},
			{"B", "A few evenings a week"},
			{"C", "Very little right now"},
		},
	},
	{
		ID:     QuestionInvestment,
		Prompt: "Matchmaking is an investment in yourself. Where do you stand?",
		Options: []Option{
			{"A", "Ready to invest in finding the right person"},
			{"B", "Open to it if the fit is right"},
			{"C", "It depends on the cost"},
			{"D", "Not willing to invest right now"},
		},
	},
	{
		ID:     QuestionTimeline,
		Prompt: "When do you want to meet your match?",
		Options: []Option{
			{"A", "As soon as possible"},
			{"B", "Within the next year"},
			{"C", "Someday, no rush"},
		},
	},
}

// AnswerText resolves a (questionID, letter) pair to the full option label.
// Unknown pairs return "" so partial or malformed answer sets degrade quietly.
func AnswerText(questionID, letter string) string {
	for _, q := range Questions {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt.Letter == letter {
				return opt.Label
			}
		}
	}
	return ""
}
