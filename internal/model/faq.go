package model

import "time"

type FAQItem struct {
	ID         int64     `db:"id" json:"id"`
	QuestionUK string    `db:"question_uk" json:"question_uk"`
	QuestionEN string    `db:"question_en" json:"question_en"`
	AnswerUK   string    `db:"answer_uk" json:"answer_uk"`
	AnswerEN   string    `db:"answer_en" json:"answer_en"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	SortOrder  int       `db:"sort_order" json:"sort_order"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
