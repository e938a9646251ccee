package models

type Review struct {
	Author  string `json:"author" example:"MovieFan1"`
	Content string `json:"content" example:"Absolutely loved this movie! The acting was superb."`
	Date    string `json:"date" example:"2024-03-15"`
}

// SentimentSummary buckets review polarities and keeps their rounded mean.
type SentimentSummary struct {
	Positive int     `json:"positive" example:"2"`
	Neutral  int     `json:"neutral" example:"1"`
	Negative int     `json:"negative" example:"0"`
	Average  float64 `json:"average" example:"0.64"`
}

// Total is the number of reviews the summary was computed from.
func (s SentimentSummary) Total() int {
	return s.Positive + s.Neutral + s.Negative
}
