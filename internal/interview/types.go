package interview

// Difficulty is a question tier. The same tiers label course content.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Sentiment is the three-way tone tag attached to an evaluation.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)

// Turn is one entry in the interview history: the question asked and the
// score the answer earned. The zero Score stands in for an unscored turn.
type Turn struct {
	QuestionID string
	Score      int // 0-100
}

// Selection is the selector's output for one interview turn.
type Selection struct {
	QuestionID string // empty for the generic fallback question
	Question   string
	Difficulty Difficulty
	Topic      string
}

// Evaluation is the structured result of scoring one answer.
type Evaluation struct {
	Score     int // 0-100
	Feedback  string
	Sentiment Sentiment
}
