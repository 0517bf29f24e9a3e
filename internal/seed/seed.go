package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/gcett/studentdir/internal/app/models"
	appRepos "github.com/gcett/studentdir/internal/app/repositories"
	"github.com/gcett/studentdir/internal/pkg/helpers"
)

// DefaultQuestions is the starter skill-test question bank
var DefaultQuestions = []appModels.SkillTestQuestion{
	{
		Question:      "Which activation function is non-linear?",
		Options:       []string{"Identity", "ReLU", "Linear", "Constant"},
		CorrectAnswer: 1,
		Difficulty:    "Easy",
		TestType:      "AI/ML",
	},
	{
		Question:      "What does overfitting usually indicate?",
		Options:       []string{"Low training error and high test error", "High training error", "Too little model capacity", "A perfectly tuned model"},
		CorrectAnswer: 0,
		Difficulty:    "Medium",
		TestType:      "AI/ML",
	},
	{
		Question:      "Which metric suits an imbalanced binary classifier best?",
		Options:       []string{"Accuracy", "F1 score", "Mean squared error", "R squared"},
		CorrectAnswer: 1,
		Difficulty:    "Hard",
		TestType:      "AI/ML",
	},
	{
		Question:      "What is a wireframe?",
		Options:       []string{"A final visual design", "A low-fidelity layout of a screen", "A CSS framework", "A usability metric"},
		CorrectAnswer: 1,
		Difficulty:    "Easy",
		TestType:      "UI/UX",
	},
	{
		Question:      "Which principle groups related items close together?",
		Options:       []string{"Contrast", "Repetition", "Proximity", "Alignment"},
		CorrectAnswer: 2,
		Difficulty:    "Medium",
		TestType:      "UI/UX",
	},
	{
		Question:      "What minimum contrast ratio does WCAG AA require for body text?",
		Options:       []string{"2:1", "3:1", "4.5:1", "7:1"},
		CorrectAnswer: 2,
		Difficulty:    "Hard",
		TestType:      "UI/UX",
	},
}

// WelcomeNotice is published on an empty notice board
var WelcomeNotice = appModels.Notice{
	Title:    "Welcome to the GCETT Student Directory",
	Content:  "Register your profile to appear in the directory and receive college notices by email.",
	Type:     "Registration",
	Priority: "Medium",
}

// CreateDefaultData fills empty question and notice stores with starter
// content. Stores that already hold data are left alone.
func CreateDefaultData(ctx context.Context, questionRepo appRepos.QuestionRepository, noticeRepo appRepos.NoticeRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (questions/notices)...")
	var finalErr error

	count, err := questionRepo.Count(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting skill-test questions")
		finalErr = errors.Join(finalErr, err)
	case count == 0:
		now := helpers.NowUTC()
		for i := range DefaultQuestions {
			q := DefaultQuestions[i]
			q.Options = append([]string(nil), q.Options...)
			q.CreatedAt, q.UpdatedAt = now, now
			if err := questionRepo.Create(ctx, &q); err != nil {
				lgr.Error().Err(err).Str("question", q.Question).Msg("Error creating default question")
				finalErr = errors.Join(finalErr, fmt.Errorf("seed question %d: %w", i, err))
			}
		}
		lgr.Info().Int("count", len(DefaultQuestions)).Msg("Default skill-test questions created")
	}

	count, err = noticeRepo.Count(ctx)
	switch {
	case err != nil:
		lgr.Error().Err(err).Msg("Error counting notices")
		finalErr = errors.Join(finalErr, err)
	case count == 0:
		notice := WelcomeNotice
		now := helpers.NowUTC()
		notice.CreatedAt, notice.UpdatedAt = now, now
		if err := noticeRepo.Create(ctx, &notice); err != nil {
			lgr.Error().Err(err).Msg("Error creating welcome notice")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Msg("Welcome notice created")
		}
	}

	return finalErr
}
