package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}

// IsMongoDuplicateKey reports whether err is a Mongo E11000 duplicate key error
func IsMongoDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// DuplicateIndex returns which of the given unique index names a Mongo
// duplicate key error refers to. ok is false when err is not a duplicate key
// error; index is empty when the index could not be identified.
func DuplicateIndex(err error, indexNames ...string) (index string, ok bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	for _, msg := range duplicateMessages(err) {
		if name := matchIndex(msg, indexNames); name != "" {
			return name, true
		}
	}
	return "", true
}

func duplicateMessages(err error) []string {
	var msgs []string

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			msgs = append(msgs, e.Message)
		}
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			msgs = append(msgs, e.Message)
		}
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		msgs = append(msgs, ce.Message)
	}

	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// matchIndex finds the index name quoted in an E11000 message such as
// "E11000 duplicate key error collection: db.students index: students_email_key dup key".
func matchIndex(msg string, indexNames []string) string {
	for _, name := range indexNames {
		if strings.Contains(msg, "index: "+name+" ") || strings.HasSuffix(msg, "index: "+name) {
			return name
		}
	}
	return ""
}
