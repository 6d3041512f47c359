package models

// ScoreBreakdown is the final accounting of an attempt. Total is always the
// length of the attempt's frozen question list, so Unanswered covers both
// blank rows and questions with no row at all.
type ScoreBreakdown struct {
	Correct    int     `bson:"correct" json:"correct"`
	Incorrect  int     `bson:"incorrect" json:"incorrect"`
	Unanswered int     `bson:"unanswered" json:"unanswered"`
	Total      int     `bson:"total" json:"total"`
	RawScore   float64 `bson:"raw_score" json:"raw_score"`
	Percentage int     `bson:"percentage" json:"percentage"`
}
