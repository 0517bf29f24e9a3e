package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gcett/studentdir/internal/app/models"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/validation"
)

func TestStudentListFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter models.StudentFilter
		want   bson.M
	}{
		{
			name:   "no filters",
			filter: models.StudentFilter{},
			want:   bson.M{},
		},
		{
			name: "sentinels mean no filter",
			filter: models.StudentFilter{
				Department: validation.AllDepartments,
				Year:       validation.AllYears,
				Interest:   validation.AllInterests,
			},
			want: bson.M{},
		},
		{
			name: "all filters combine with AND",
			filter: models.StudentFilter{
				Search:     "Shar",
				Department: "Information Technology",
				Year:       "3rd Year",
				Interest:   "AI/ML",
			},
			want: bson.M{
				"$or": bson.A{
					bson.M{"fullName": primitive.Regex{Pattern: "Shar", Options: "i"}},
					bson.M{"wbjeeRollLastTwo": primitive.Regex{Pattern: "Shar", Options: "i"}},
				},
				"department":  "Information Technology",
				"currentYear": "3rd Year",
				"interests":   bson.M{"$in": bson.A{"AI/ML"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studentListFilter(tt.filter))
		})
	}
}

func TestSuggestionFilterEscapesRegex(t *testing.T) {
	got := suggestionFilter(" a.b+ ")
	re := primitive.Regex{Pattern: `a\.b\+`, Options: "i"}
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"fullName": re},
		bson.M{"homeTown": re},
		bson.M{"phone": re},
	}}, got)
}

func TestDuplicateFilter(t *testing.T) {
	f, err := duplicateFilter(models.DuplicateFieldEmail, " Student@GCETT.ac.in ")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"email": "student@gcett.ac.in"}, f)

	f, err = duplicateFilter(models.DuplicateFieldPhone, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"phone": "9876543210"}, f)

	f, err = duplicateFilter(models.DuplicateFieldWbjeeRoll, "WB2024123442")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"wbjeeRollLastTwo": "42"}, f)

	_, err = duplicateFilter("roll", "x")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFieldForIndex(t *testing.T) {
	assert.Equal(t, models.DuplicateFieldEmail, fieldForIndex(StudentEmailIndex))
	assert.Equal(t, models.DuplicateFieldPhone, fieldForIndex(StudentPhoneIndex))
	assert.Equal(t, models.DuplicateField(""), fieldForIndex(""))
}

func TestDuplicateKeyError(t *testing.T) {
	cause := errors.New("E11000")
	err := error(&DuplicateKeyError{Field: models.DuplicateFieldEmail, Err: cause})

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, models.DuplicateFieldEmail, dup.Field)
	assert.ErrorIs(t, err, cause)
}

func TestInsertSubmissionQuery(t *testing.T) {
	linkedin := "https://linkedin.com/in/arjun"
	s := &models.Submission{
		ID:            uuid.New(),
		Name:          "Arjun",
		Email:         "arjun@gcett.ac.in",
		Phone:         "9876543210",
		LinkedinID:    &linkedin,
		Category:      "AI/ML",
		PortfolioFile: &models.FileRef{Name: "p.pdf", URL: "/uploads/portfolios/1_p.pdf"},
		Status:        models.SubmissionStatusSubmitted,
		CreatedAt:     time.Now(),
	}

	sql, args, err := insertSubmissionQuery(s).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "INSERT INTO submissions")
	assert.Contains(t, sql, "$13")
	require.Len(t, args, 13)

	assert.Equal(t, s.ID, args[0])
	assert.Equal(t, &linkedin, args[4])
	assert.Nil(t, args[5])
	assert.Equal(t, "p.pdf", *(args[7].(*string)))
	assert.Equal(t, "/uploads/portfolios/1_p.pdf", *(args[8].(*string)))
	assert.Nil(t, args[9].(*string))
	assert.Nil(t, args[10].(*string))
	assert.Equal(t, "Submitted", args[11])
}

func TestListSubmissionsQuery(t *testing.T) {
	sql, _, err := listSubmissionsQuery(40, 20).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "COUNT(*) OVER()")
	assert.Contains(t, sql, "FROM submissions")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
}

func TestFileRef(t *testing.T) {
	name, url, empty := "a.pdf", "/uploads/a.pdf", ""
	assert.Nil(t, fileRef(nil, nil))
	assert.Nil(t, fileRef(&empty, &empty))
	assert.Equal(t, &models.FileRef{Name: "a.pdf"}, fileRef(&name, nil))
	assert.Equal(t, &models.FileRef{Name: "a.pdf", URL: "/uploads/a.pdf"}, fileRef(&name, &url))
	assert.Equal(t, &models.FileRef{URL: "/uploads/a.pdf"}, fileRef(nil, &url))
}
