package book

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("book not found")
	// ErrUnavailable covers both a missing/deleted book and stock = 0;
	// borrowers only need to know the copy cannot be handed out.
	ErrUnavailable = errors.New("book not available")
	ErrCodeTaken   = errors.New("code is already taken")
	ErrTitleTaken  = errors.New("title is already taken")
)

type Book struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"id"`
	Code      string         `gorm:"size:64;not null;index:idx_books_code" json:"code"`
	Title     string         `gorm:"size:255;not null;index:idx_books_title" json:"title"`
	Author    string         `gorm:"size:255" json:"author"`
	Stock     int            `gorm:"not null;default:1" json:"stock"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string { return "books" }

// Available reports whether at least one copy is on the shelf.
func (b *Book) Available() bool { return b.Stock >= 1 }
