package repositoryImp

import (
	"gorm.io/gorm"

	"bookstudy/entities"
	"bookstudy/pkg/book/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BookRepository { return &repo{db} }

func (r *repo) SaveBook(b *entities.Book) error { return r.db.Save(b).Error }

func (r *repo) ReplaceChapters(bookID string, chs []entities.Chapter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&entities.Chapter{}).Error; err != nil {
			return err
		}
		if len(chs) == 0 {
			return nil
		}
		return tx.Create(&chs).Error
	})
}

func (r *repo) ChapterByNumber(bookID string, chapterNumber int) (*entities.Chapter, error) {
	var ch entities.Chapter
	if err := r.db.Where("book_id = ? AND chapter_number = ?", bookID, chapterNumber).First(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *repo) ChaptersByBook(bookID string) ([]entities.Chapter, error) {
	var chs []entities.Chapter
	return chs, r.db.Where("book_id = ?", bookID).Order("chapter_number ASC").Find(&chs).Error
}
