package services

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
	"unicode"

	"movie-insight/internal/models"

	"gopkg.in/yaml.v3"
)

// Polarity cut-offs: above positiveThreshold is positive, below
// negativeThreshold is negative, anything in between is neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1

	// modifierWindow is how many tokens before a sentiment word are inspected
	// for intensifiers and negations.
	modifierWindow = 2
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon maps words to polarity scores plus the modifiers that adjust them.
type Lexicon struct {
	NegationFactor float64            `yaml:"negation_factor"`
	Negations      []string           `yaml:"negations"`
	Intensifiers   map[string]float64 `yaml:"intensifiers"`
	Words          map[string]float64 `yaml:"words"`

	negations map[string]struct{}
}

// ParseLexicon decodes a YAML lexicon and checks its scores are in range.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}
	for word, score := range lex.Words {
		if score < -1 || score > 1 {
			return nil, fmt.Errorf("lexicon word %q has polarity %v outside [-1, 1]", word, score)
		}
	}

	lex.negations = make(map[string]struct{}, len(lex.Negations))
	for _, n := range lex.Negations {
		lex.negations[strings.ToLower(n)] = struct{}{}
	}
	return &lex, nil
}

// DefaultLexicon returns the lexicon bundled with the binary.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

func (l *Lexicon) isNegation(token string) bool {
	if _, ok := l.negations[token]; ok {
		return true
	}
	return strings.HasSuffix(token, "n't")
}

// SentimentService scores review text.
type SentimentService interface {
	// Polarity returns a score in [-1, 1] for a piece of text.
	Polarity(text string) float64
	// Score buckets the polarity of every review and averages them.
	Score(reviews []models.Review) models.SentimentSummary
}

type sentimentService struct {
	lexicon *Lexicon
}

func NewSentimentService(lexicon *Lexicon) SentimentService {
	return &sentimentService{lexicon: lexicon}
}

// Polarity averages the scores of the lexicon words found in text. Each word
// score is adjusted by intensifiers and negations among the preceding
// modifierWindow tokens, stopping early at another sentiment word.
func (s *sentimentService) Polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var matched int
	for i, token := range tokens {
		score, ok := s.lexicon.Words[token]
		if !ok {
			continue
		}

		for j := i - 1; j >= 0 && j >= i-modifierWindow; j-- {
			prev := tokens[j]
			if _, isWord := s.lexicon.Words[prev]; isWord {
				break
			}
			if factor, isIntensifier := s.lexicon.Intensifiers[prev]; isIntensifier {
				score *= factor
				continue
			}
			if s.lexicon.isNegation(prev) {
				score *= s.lexicon.NegationFactor
			}
		}

		sum += clamp(score)
		matched++
	}

	if matched == 0 {
		return 0
	}
	return clamp(sum / float64(matched))
}

func (s *sentimentService) Score(reviews []models.Review) models.SentimentSummary {
	var summary models.SentimentSummary
	if len(reviews) == 0 {
		return summary
	}

	var total float64
	for _, review := range reviews {
		polarity := s.Polarity(review.Content)
		total += polarity

		switch {
		case polarity > positiveThreshold:
			summary.Positive++
		case polarity < negativeThreshold:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	summary.Average = math.Round(total/float64(len(reviews))*100) / 100
	return summary
}

// tokenize lowercases text and splits it into words, keeping inner apostrophes
// so contractions like "isn't" survive.
func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "'"); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
