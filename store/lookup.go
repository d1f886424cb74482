package store

import (
	"fmt"

	"trade-directory/models"
)

// Name enumeration backs the link-creation selectors. Each call reads the
// live table; there is no cache to go stale. Duplicates are only collapsed
// where the column itself is unique.

func (s *Store) CountryNames() ([]string, error) {
	names := make([]string, 0)
	if err := s.db.Model(&models.Country{}).Pluck("name_russian", &names).Error; err != nil {
		return nil, fmt.Errorf("country names: %w", err)
	}
	return names, nil
}

func (s *Store) GroupNames() ([]string, error) {
	names := make([]string, 0)
	if err := s.db.Model(&models.ProductGroup{}).Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("group names: %w", err)
	}
	return names, nil
}

func (s *Store) BuyerSurnames() ([]string, error) {
	names := make([]string, 0)
	if err := s.db.Model(&models.Buyer{}).Pluck("surname", &names).Error; err != nil {
		return nil, fmt.Errorf("buyer surnames: %w", err)
	}
	return names, nil
}
