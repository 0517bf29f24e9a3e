package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a directory profile stored in the students collection.
// Only the last two characters of the WBJEE roll number are kept.
type Student struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	WbjeeRollLastTwo string             `bson:"wbjeeRollLastTwo" json:"wbjeeRollLastTwo"`
	HomeTown         string             `bson:"homeTown" json:"homeTown"`
	Department       string             `bson:"department" json:"department"`
	CurrentYear      string             `bson:"currentYear" json:"currentYear"`
	Interests        []string           `bson:"interests" json:"interests"`
	InterestsUpdated bool               `bson:"interestsUpdated" json:"interestsUpdated"`
	ProfilePhotoURL  string             `bson:"profilePhotoUrl" json:"profilePhotoUrl"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// DuplicateField names a field the duplicate checker can test
type DuplicateField string

const (
	DuplicateFieldEmail     DuplicateField = "email"
	DuplicateFieldPhone     DuplicateField = "phone"
	DuplicateFieldWbjeeRoll DuplicateField = "wbjeeRoll"
)

// Valid reports whether f is a known field
func (f DuplicateField) Valid() bool {
	switch f {
	case DuplicateFieldEmail, DuplicateFieldPhone, DuplicateFieldWbjeeRoll:
		return true
	}
	return false
}

// StudentFilter selects students for the directory listing. Empty values
// and the "All ..." sentinels mean no filter on that attribute.
type StudentFilter struct {
	Search     string
	Department string
	Year       string
	Interest   string
}
