package models

// ReviewModel is a reader's review of a catalogue entry. Reviews ride on the
// store's referential cascade: deleting a book removes its reviews.
type ReviewModel struct {
	Base
	BookID     uint    `json:"book_id"     gorm:"index;not null"`
	UserID     uint    `json:"user_id"     gorm:"index;not null"`
	ReviewText string  `json:"review_text" gorm:"type:text"`
	Rating     float64 `json:"rating"`
}

func (ReviewModel) TableName() string { return "reviews" }
