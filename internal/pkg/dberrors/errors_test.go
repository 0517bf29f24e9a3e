package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func dupWriteException(msg string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: msg}},
	}
}

func TestDuplicateIndex(t *testing.T) {
	indexes := []string{"students_email_key", "students_phone_key"}

	tests := []struct {
		name      string
		err       error
		wantIndex string
		wantOK    bool
	}{
		{
			name:      "email index",
			err:       dupWriteException(`E11000 duplicate key error collection: directory.students index: students_email_key dup key: { email: "a@b.c" }`),
			wantIndex: "students_email_key",
			wantOK:    true,
		},
		{
			name:      "phone index wrapped",
			err:       fmt.Errorf("insert: %w", dupWriteException(`E11000 duplicate key error collection: directory.students index: students_phone_key dup key: { phone: "1" }`)),
			wantIndex: "students_phone_key",
			wantOK:    true,
		},
		{
			name:   "unknown index",
			err:    dupWriteException(`E11000 duplicate key error collection: directory.students index: other_key dup key`),
			wantOK: true,
		},
		{
			name: "not a duplicate",
			err:  errors.New("connection refused"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := DuplicateIndex(tt.err, indexes...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "submissions_pkey"})
	assert.True(t, IsDuplicateConstraintError(err, "submissions_pkey"))
	assert.False(t, IsDuplicateConstraintError(err, "other"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "submissions_pkey"))
}
