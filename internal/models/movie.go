package models

import "errors"

// ErrMovieNotFound marks a lookup the movie database answered with Response "False".
var ErrMovieNotFound = errors.New("movie not found")

const (
	responseTrue = "True"

	// TypeMovie is the OMDb type filter used for every search this service issues.
	TypeMovie = "movie"
)

// MovieSummary is one entry of an OMDb search result.
type MovieSummary struct {
	Title  string `json:"Title" example:"Inception"`
	Year   string `json:"Year" example:"2010"`
	ImdbID string `json:"imdbID" example:"tt1375666"`
	Type   string `json:"Type,omitempty" example:"movie"`
	Poster string `json:"Poster" example:"https://m.media-amazon.com/images/M/poster.jpg"`
}

type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// MovieDetail is the full record returned by an OMDb identifier lookup.
type MovieDetail struct {
	Title        string   `json:"Title" example:"Inception"`
	Year         string   `json:"Year" example:"2010"`
	Rated        string   `json:"Rated" example:"PG-13"`
	Released     string   `json:"Released" example:"16 Jul 2010"`
	Runtime      string   `json:"Runtime" example:"148 min"`
	Genre        string   `json:"Genre" example:"Action, Adventure, Sci-Fi"`
	Director     string   `json:"Director" example:"Christopher Nolan"`
	Writer       string   `json:"Writer"`
	Actors       string   `json:"Actors" example:"Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page"`
	Plot         string   `json:"Plot"`
	Language     string   `json:"Language"`
	Country      string   `json:"Country"`
	Awards       string   `json:"Awards"`
	Poster       string   `json:"Poster"`
	Ratings      []Rating `json:"Ratings"`
	Metascore    string   `json:"Metascore"`
	ImdbRating   string   `json:"imdbRating" example:"8.8"`
	ImdbVotes    string   `json:"imdbVotes"`
	ImdbID       string   `json:"imdbID" example:"tt1375666"`
	Type         string   `json:"Type" example:"movie"`
	TotalSeasons string   `json:"totalSeasons,omitempty"`
	Response     string   `json:"Response" example:"True"`
	Error        string   `json:"Error,omitempty"`
}

// Found reports whether the lookup matched a movie.
func (m *MovieDetail) Found() bool {
	return m != nil && m.Response == responseTrue
}

// SearchQuery holds the parameters of an OMDb title search.
type SearchQuery struct {
	Term string
	Type string
	Year string
	Page int
}

// SearchResponse is the envelope OMDb returns for title searches.
type SearchResponse struct {
	Search       []MovieSummary `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error,omitempty"`
}

// Found reports whether the search produced a result list.
func (r *SearchResponse) Found() bool {
	return r != nil && r.Response == responseTrue
}

type CastMember struct {
	Name string `json:"name" example:"Leonardo DiCaprio"`
}

// MovieDetailView is everything the detail page renders for one movie.
type MovieDetailView struct {
	Movie     *MovieDetail     `json:"movie"`
	Cast      []CastMember     `json:"cast"`
	Reviews   []Review         `json:"reviews"`
	Sentiment SentimentSummary `json:"sentiment"`
	Similar   []MovieSummary   `json:"similar_movies"`
}

type SearchResults struct {
	Query        string         `json:"query" example:"matrix"`
	Page         int            `json:"page" example:"1"`
	Movies       []MovieSummary `json:"movies"`
	TotalResults int64          `json:"total_results" example:"42"`
}
