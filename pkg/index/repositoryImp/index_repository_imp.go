package repositoryImp

import (
	"gorm.io/gorm"

	"docqa/entities"
	"docqa/pkg/index/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IndexRepository { return &repo{db} }

// Replace swaps the persisted index in one transaction: last writer wins,
// readers never observe a half-written index.
func (r *repo) Replace(doc *entities.IndexDocument, chunks []entities.IndexChunk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.IndexChunk{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.IndexDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		for i := range chunks {
			chunks[i].DocID = doc.DocID
		}
		return tx.Create(&chunks).Error
	})
}

func (r *repo) Snapshot() (*entities.IndexDocument, []entities.IndexChunk, error) {
	var docs []entities.IndexDocument
	if err := r.db.Limit(1).Find(&docs).Error; err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, nil
	}
	var cs []entities.IndexChunk
	if err := r.db.Where("doc_id = ?", docs[0].DocID).Order("ord ASC").Find(&cs).Error; err != nil {
		return nil, nil, err
	}
	return &docs[0], cs, nil
}
