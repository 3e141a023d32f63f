package assistant

import (
	"context"

	"independent-director/pkg/models"
)

// Provider defines the interface for AI assistant providers
type Provider interface {
	// RankDirectorIDs ranks directors against a natural-language query and
	// returns matching IDs in relevance order
	RankDirectorIDs(ctx context.Context, query string, directors []models.Director) ([]string, error)

	// SummarizeDirector generates a short professional profile summary
	SummarizeDirector(ctx context.Context, director models.Director) (string, error)

	// SimilarDirectorIDs recommends up to three directors similar to the
	// subject, excluding the subject itself
	SimilarDirectorIDs(ctx context.Context, subject models.Director, others []models.Director) ([]string, error)

	// ChatReply answers a chat turn grounded in the directory data
	ChatReply(ctx context.Context, history []models.ChatMessage, message string, directors []models.Director) (string, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// Name returns the provider name
	Name() string
}
