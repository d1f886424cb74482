package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trade-directory/models"
)

func (s *Store) CreateProductGroup(g *models.ProductGroup) error {
	g.ID = 0
	if err := s.db.Create(g).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create product group: %w", err)
	}
	return nil
}

func (s *Store) ListProductGroups() ([]models.ProductGroup, error) {
	var groups []models.ProductGroup
	if err := s.db.Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list product groups: %w", err)
	}
	return groups, nil
}

func (s *Store) GetProductGroup(id uint) (*models.ProductGroup, error) {
	var g models.ProductGroup
	if err := s.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product group %d: %w", id, err)
	}
	return &g, nil
}

// ProductGroupWithCountries returns the group and the countries it is linked
// to through either link table, each country exactly once.
func (s *Store) ProductGroupWithCountries(id uint) (*models.ProductGroup, []models.Country, error) {
	g, err := s.GetProductGroup(id)
	if err != nil {
		return nil, nil, err
	}

	var ids []uint
	if err := s.db.Model(&models.CountryProductGroupLink{}).
		Where("product_group_id = ?", id).
		Pluck("country_id", &ids).Error; err != nil {
		return nil, nil, fmt.Errorf("product group %d country links: %w", id, err)
	}
	var viaBuyers []uint
	if err := s.db.Model(&models.CountryGroupBuyerLink{}).
		Where("product_group_id = ?", id).
		Pluck("country_id", &viaBuyers).Error; err != nil {
		return nil, nil, fmt.Errorf("product group %d buyer links: %w", id, err)
	}

	countries := make([]models.Country, 0)
	for _, cid := range dedupe(append(ids, viaBuyers...)) {
		var c models.Country
		if err := s.db.First(&c, cid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("get country %d: %w", cid, err)
		}
		countries = append(countries, c)
	}
	return g, countries, nil
}

func (s *Store) UpdateProductGroup(id uint, upd models.ProductGroupUpdate) (*models.ProductGroup, error) {
	g, err := s.GetProductGroup(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Code != nil {
		g.Code = *upd.Code
	}
	if err := s.db.Save(g).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update product group %d: %w", id, err)
	}
	return g, nil
}

// DeleteProductGroup removes the group and every link row referencing it.
func (s *Store) DeleteProductGroup(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete product group: %w", tx.Error)
	}

	var g models.ProductGroup
	if err := tx.First(&g, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get product group %d: %w", id, err)
	}
	if err := tx.Where("product_group_id = ?", id).Delete(&models.CountryProductGroupLink{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete product group %d country links: %w", id, err)
	}
	if err := tx.Where("product_group_id = ?", id).Delete(&models.CountryGroupBuyerLink{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete product group %d buyer links: %w", id, err)
	}
	if err := tx.Delete(&g).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete product group %d: %w", id, err)
	}
	return tx.Commit().Error
}
