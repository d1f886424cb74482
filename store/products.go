package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trade-directory/models"
)

func (s *Store) CreateProduct(p *models.Product) error {
	p.ID = 0
	if err := s.db.Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &p, nil
}

func (s *Store) UpdateProduct(id uint, upd models.ProductUpdate) (*models.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if upd.EngDesc != nil {
		p.EngDesc = *upd.EngDesc
	}
	if upd.VBNFull != nil {
		p.VBNFull = *upd.VBNFull
	}
	if upd.Units != nil {
		p.Units = *upd.Units
	}
	if upd.Comment != nil {
		p.Comment = *upd.Comment
	}
	if upd.ShowComment != nil {
		p.ShowComment = *upd.ShowComment
	}
	if upd.Grower != nil {
		p.Grower = *upd.Grower
	}
	if upd.Supplier != nil {
		p.Supplier = *upd.Supplier
	}
	if upd.Length != nil {
		p.Length = *upd.Length
	}
	if err := s.db.Save(p).Error; err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return p, nil
}

func (s *Store) DeleteProduct(id uint) error {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get product %d: %w", id, err)
	}
	if err := s.db.Delete(&p).Error; err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}
