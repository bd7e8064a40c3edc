package models

// BookModel is a catalogue entry.
type BookModel struct {
	Base
	Title         string `json:"title"          gorm:"size:255;index;not null"`
	Author        string `json:"author"         gorm:"size:255;index;not null"`
	Genre         string `json:"genre"          gorm:"size:100;index"`
	YearPublished int    `json:"year_published"`
	Summary       string `json:"summary"        gorm:"type:text"`

	Reviews []ReviewModel `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

func (BookModel) TableName() string { return "books" }
