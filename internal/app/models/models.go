package models

// Collection names in the document stores
const (
	CollectionStudents  = "students"
	CollectionNotices   = "notices"
	CollectionQuestions = "skill_test_questions"
	CollectionEntrants  = "skill_test_entrants"
)
