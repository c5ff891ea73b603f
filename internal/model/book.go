package model

// BookStatus splits a title's copies by condition. The four counters always
// sum to Book.Num.
type BookStatus struct {
	Available int `gorm:"not null"`
	Loaned    int `gorm:"not null"`
	Disabled  int `gorm:"not null"`
	Renovated int `gorm:"not null"`
}

func (s BookStatus) Total() int {
	return s.Available + s.Loaned + s.Disabled + s.Renovated
}

type Book struct {
	Base
	Name        string `gorm:"not null;index"`
	Author      string `gorm:"not null"`
	Category    string `gorm:"index"`
	Description string
	ISBN        string
	PublishYear int
	CoverImage  string
	Num         int        `gorm:"not null"`
	Status      BookStatus `gorm:"embedded;embeddedPrefix:status_"`
}
