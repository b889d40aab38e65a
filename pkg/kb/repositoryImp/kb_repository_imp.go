package repositoryImp

import (
	"gorm.io/gorm"

	"bookstudy/entities"
	"bookstudy/pkg/kb/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChunkRepository { return &repo{db} }

func (r *repo) ReplaceBook(bookID string, cs []entities.BookChunk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&entities.BookChunk{}).Error; err != nil {
			return err
		}
		if len(cs) == 0 {
			return nil
		}
		return tx.Create(&cs).Error
	})
}

func (r *repo) ByBook(bookID string) ([]entities.BookChunk, error) {
	var cs []entities.BookChunk
	return cs, r.db.Where("book_id = ?", bookID).Find(&cs).Error
}

func (r *repo) ByBookChapter(bookID string, chapterNumber int) ([]entities.BookChunk, error) {
	var cs []entities.BookChunk
	return cs, r.db.Where("book_id = ? AND chapter_number = ?", bookID, chapterNumber).Find(&cs).Error
}
