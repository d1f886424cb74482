package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trade-directory/models"
)

// Links are created from display names: a country's russian name, a product
// group's name, a buyer's surname. Every name is resolved before the insert
// is attempted, so a row with a missing key can never reach the database.

func (s *Store) countryIDByName(nameRussian string) (uint, error) {
	var ids []uint
	if err := s.db.Model(&models.Country{}).
		Where("name_russian = ?", nameRussian).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("resolve country %q: %w", nameRussian, err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: country %q", ErrInvalidReference, nameRussian)
	}
	return ids[0], nil
}

func (s *Store) groupIDByName(name string) (uint, error) {
	var ids []uint
	if err := s.db.Model(&models.ProductGroup{}).
		Where("name = ?", name).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("resolve product group %q: %w", name, err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: product group %q", ErrInvalidReference, name)
	}
	return ids[0], nil
}

func (s *Store) buyerIDBySurname(surname string) (uint, error) {
	var ids []uint
	if err := s.db.Model(&models.Buyer{}).
		Where("surname = ?", surname).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("resolve buyer %q: %w", surname, err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: buyer %q", ErrInvalidReference, surname)
	}
	return ids[0], nil
}

// CreateCountryGroupLink associates a country with a product group.
func (s *Store) CreateCountryGroupLink(countryName, groupName string) (*models.CountryProductGroupLink, error) {
	countryID, err := s.countryIDByName(countryName)
	if err != nil {
		return nil, err
	}
	groupID, err := s.groupIDByName(groupName)
	if err != nil {
		return nil, err
	}

	link := &models.CountryProductGroupLink{CountryID: countryID, ProductGroupID: groupID}
	if err := s.db.Create(link).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create country-group link: %w", err)
	}
	return link, nil
}

// CreateCountryGroupBuyerLink associates a buyer with a (country, group) pair.
func (s *Store) CreateCountryGroupBuyerLink(countryName, groupName, buyerSurname string) (*models.CountryGroupBuyerLink, error) {
	countryID, err := s.countryIDByName(countryName)
	if err != nil {
		return nil, err
	}
	groupID, err := s.groupIDByName(groupName)
	if err != nil {
		return nil, err
	}
	buyerID, err := s.buyerIDBySurname(buyerSurname)
	if err != nil {
		return nil, err
	}

	link := &models.CountryGroupBuyerLink{CountryID: countryID, ProductGroupID: groupID, BuyerID: buyerID}
	if err := s.db.Create(link).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create country-group-buyer link: %w", err)
	}
	return link, nil
}

// BuyersForGroup returns every buyer linked to the named product group
// through the triple link table, each buyer once.
func (s *Store) BuyersForGroup(groupName string) ([]models.Buyer, error) {
	groupID, err := s.groupIDByName(groupName)
	if err != nil {
		return nil, err
	}

	var ids []uint
	if err := s.db.Model(&models.CountryGroupBuyerLink{}).
		Where("product_group_id = ?", groupID).
		Pluck("buyer_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("group %q buyer links: %w", groupName, err)
	}

	buyers := make([]models.Buyer, 0)
	for _, bid := range dedupe(ids) {
		var b models.Buyer
		if err := s.db.First(&b, bid).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("get buyer %d: %w", bid, err)
		}
		buyers = append(buyers, b)
	}
	return buyers, nil
}
