package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trade-directory/models"
)

func (s *Store) CreateCountry(c *models.Country) error {
	c.ID = 0
	if err := s.db.Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create country: %w", err)
	}
	return nil
}

func (s *Store) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := s.db.Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}

func (s *Store) GetCountry(id uint) (*models.Country, error) {
	var c models.Country
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get country %d: %w", id, err)
	}
	return &c, nil
}

// CountryWithGroups returns the country and the product groups it is linked
// to through either link table, each group exactly once. Groups are fetched
// one by one; fine at this catalog's size.
func (s *Store) CountryWithGroups(id uint) (*models.Country, []models.ProductGroup, error) {
	c, err := s.GetCountry(id)
	if err != nil {
		return nil, nil, err
	}

	var ids []uint
	if err := s.db.Model(&models.CountryProductGroupLink{}).
		Where("country_id = ?", id).
		Pluck("product_group_id", &ids).Error; err != nil {
		return nil, nil, fmt.Errorf("country %d group links: %w", id, err)
	}
	var viaBuyers []uint
	if err := s.db.Model(&models.CountryGroupBuyerLink{}).
		Where("country_id = ?", id).
		Pluck("product_group_id", &viaBuyers).Error; err != nil {
		return nil, nil, fmt.Errorf("country %d buyer links: %w", id, err)
	}

	groups := make([]models.ProductGroup, 0)
	for _, gid := range dedupe(append(ids, viaBuyers...)) {
		var g models.ProductGroup
		if err := s.db.First(&g, gid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("get product group %d: %w", gid, err)
		}
		groups = append(groups, g)
	}
	return c, groups, nil
}

func (s *Store) UpdateCountry(id uint, upd models.CountryUpdate) (*models.Country, error) {
	c, err := s.GetCountry(id)
	if err != nil {
		return nil, err
	}
	if upd.NameEnglish != nil {
		c.NameEnglish = *upd.NameEnglish
	}
	if upd.NameRussian != nil {
		c.NameRussian = *upd.NameRussian
	}
	if upd.CountryCode != nil {
		c.CountryCode = *upd.CountryCode
	}
	if err := s.db.Save(c).Error; err != nil {
		return nil, fmt.Errorf("update country %d: %w", id, err)
	}
	return c, nil
}

// DeleteCountry removes the country and every link row referencing it, in
// one transaction. Link rows are never left orphaned.
func (s *Store) DeleteCountry(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete country: %w", tx.Error)
	}

	var c models.Country
	if err := tx.First(&c, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get country %d: %w", id, err)
	}
	if err := tx.Where("country_id = ?", id).Delete(&models.CountryProductGroupLink{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete country %d group links: %w", id, err)
	}
	if err := tx.Where("country_id = ?", id).Delete(&models.CountryGroupBuyerLink{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete country %d buyer links: %w", id, err)
	}
	if err := tx.Delete(&c).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete country %d: %w", id, err)
	}
	return tx.Commit().Error
}
