package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcett/studentdir/internal/pkg/apperrors"
)

type sampleForm struct {
	Name       string `form:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `form:"department" validate:"required,department"`
	Year       string `form:"currentYear" validate:"required,year"`
}

type sampleQuestion struct {
	Options []string `json:"options" validate:"len=4"`
	Answer  *int     `json:"correctAnswer" validate:"required,min=0,max=3"`
}

func TestStruct(t *testing.T) {
	valid := sampleForm{
		Name:       "Arjun Sharma",
		Email:      "arjun@gcett.ac.in",
		Department: "Information Technology",
		Year:       "2nd Year",
	}
	require.NoError(t, Struct(valid))

	tests := []struct {
		name      string
		mutate    func(f *sampleForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(f *sampleForm) { f.Name = "" },
			wantField: "fullName",
			wantMsg:   "fullName is required",
		},
		{
			name:      "bad email",
			mutate:    func(f *sampleForm) { f.Email = "nope" },
			wantField: "email",
			wantMsg:   "email must be a valid email address",
		},
		{
			name:      "unknown department",
			mutate:    func(f *sampleForm) { f.Department = "Mechanical" },
			wantField: "department",
		},
		{
			name:      "sentinel year is not a year",
			mutate:    func(f *sampleForm) { f.Year = AllYears },
			wantField: "currentYear",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := Struct(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.wantField, apperrors.FieldOf(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestStruct_NumberMessages(t *testing.T) {
	five := 5
	err := Struct(sampleQuestion{Options: []string{"a", "b", "c", "d"}, Answer: &five})
	require.Error(t, err)
	assert.Equal(t, "correctAnswer must be at most 3", err.Error())

	err = Struct(sampleQuestion{Options: []string{"a"}, Answer: &five})
	require.Error(t, err)
	assert.Equal(t, "options", apperrors.FieldOf(err))
}

func TestConfigureOnForeignValidator(t *testing.T) {
	v := validator.New()
	require.NoError(t, Configure(v))

	type notice struct {
		Type     string `json:"type" validate:"noticetype"`
		Priority string `json:"priority" validate:"priority"`
	}
	assert.NoError(t, v.Struct(notice{Type: "Event", Priority: "Low"}))
	assert.Error(t, v.Struct(notice{Type: "Party", Priority: "Low"}))
	assert.Error(t, v.Struct(notice{Type: "Event", Priority: "Urgent"}))
}

func TestFromError_NonValidation(t *testing.T) {
	err := FromError(assert.AnError)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "invalid request body", err.Error())
	assert.Nil(t, FromError(nil))
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, LooksLikeEmail("a@b"))
	assert.False(t, LooksLikeEmail("ab"))
}
