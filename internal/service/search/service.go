package search

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/model"
	"github.com/gwalharshu287-lang/Service-get/pkg/gemini"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/search/mock.go -package=mocks

type classifier interface {
	Classify(ctx context.Context, query string) *gemini.SmartMatch
}

type proDirectory interface {
	FilterByCategory(ctx context.Context, category model.Category) ([]model.ProProfile, error)
	FilterByText(ctx context.Context, query string) ([]model.ProProfile, error)
}

// Result is the outcome of a smart search: the matched professionals plus the
// classifier's explanation when it had a confident match.
type Result struct {
	Pros       []model.ProProfile `json:"pros"`
	Category   model.Category     `json:"category,omitempty"`
	Suggestion string             `json:"suggestion"`
	AIMatched  bool               `json:"ai_matched"`
}

// Service turns free-text queries into professional listings. The classifier
// is best-effort: when it fails or has no confident match, the search
// degrades to a plain substring filter and no error reaches the caller.
type Service struct {
	classifier classifier
	pros       proDirectory
}

// NewService constructs a search service.
func NewService(classifier classifier, pros proDirectory) *Service {
	return &Service{classifier: classifier, pros: pros}
}

// Search classifies the query into a category and filters the directory by
// it. Classification failure is not an error: the fallback is a
// case-insensitive substring match over the whole directory.
func (s *Service) Search(ctx context.Context, query string) (Result, error) {
	match := s.classifier.Classify(ctx, query)

	if match == nil {
		pros, err := s.pros.FilterByText(ctx, query)
		if err != nil {
			return Result{}, fmt.Errorf("filter by text: %w", err)
		}

		zlog.Logger.Info().Str("query", query).Int("hits", len(pros)).Msg("text search fallback")

		return Result{
			Pros:       pros,
			Suggestion: "Here are professionals matching your text search.",
		}, nil
	}

	pros, err := s.pros.FilterByCategory(ctx, match.Category)
	if err != nil {
		return Result{}, fmt.Errorf("filter by category: %w", err)
	}

	zlog.Logger.Info().
		Str("query", query).
		Str("category", string(match.Category)).
		Int("hits", len(pros)).
		Msg("smart search matched")

	return Result{
		Pros:       pros,
		Category:   match.Category,
		Suggestion: fmt.Sprintf("%s (%s)", match.Reasoning, match.SuggestedAction),
		AIMatched:  true,
	}, nil
}
