package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkillTestQuestion is a multiple-choice question with exactly four options
type SkillTestQuestion struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question      string             `bson:"question" json:"question"`
	Options       []string           `bson:"options" json:"options"`
	CorrectAnswer int                `bson:"correctAnswer" json:"correctAnswer"`
	Difficulty    string             `bson:"difficulty" json:"difficulty"`
	TestType      string             `bson:"testType" json:"testType"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SkillTestEntrant records who has taken part in the skill test
type SkillTestEntrant struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name" json:"name"`
	Categories      []string           `bson:"categories" json:"categories"`
	LastSubmittedAt time.Time          `bson:"lastSubmittedAt" json:"lastSubmittedAt"`
}
