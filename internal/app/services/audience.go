package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

// AudienceSource is a named store of email addresses
type AudienceSource struct {
	Name   string
	Source repositories.EmailSource
}

// Audience collects notice recipients from every store that knows emails
type Audience struct {
	sources []AudienceSource
	logger  zerolog.Logger
}

// NewAudience creates an audience over sources
func NewAudience(logger zerolog.Logger, sources ...AudienceSource) *Audience {
	return &Audience{sources: sources, logger: logger}
}

// Emails returns the union of all sources, keeping only strings that look
// like addresses and dropping case-insensitive repeats. A failing source is
// logged and skipped.
func (a *Audience) Emails(ctx context.Context) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, src := range a.sources {
		emails, err := src.Source.Emails(ctx)
		if err != nil {
			a.logger.Error().Err(err).Str("source", src.Name).Msg("Failed to read recipients")
			continue
		}
		for _, e := range emails {
			e = strings.TrimSpace(e)
			if !validation.LooksLikeEmail(e) {
				continue
			}
			key := strings.ToLower(e)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
