package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"trade-directory/models"
)

func (s *Store) CreateBuyer(b *models.Buyer) error {
	b.ID = 0
	if err := s.db.Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create buyer: %w", err)
	}
	return nil
}

func (s *Store) ListBuyers() ([]models.Buyer, error) {
	var buyers []models.Buyer
	if err := s.db.Find(&buyers).Error; err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	return buyers, nil
}

func (s *Store) GetBuyer(id uint) (*models.Buyer, error) {
	var b models.Buyer
	if err := s.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get buyer %d: %w", id, err)
	}
	return &b, nil
}

func (s *Store) UpdateBuyer(id uint, upd models.BuyerUpdate) (*models.Buyer, error) {
	b, err := s.GetBuyer(id)
	if err != nil {
		return nil, err
	}
	if upd.DateOfBirth != nil {
		b.DateOfBirth = *upd.DateOfBirth
	}
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.Surname != nil {
		b.Surname = *upd.Surname
	}
	if upd.Email != nil {
		b.Email = *upd.Email
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	if upd.Telegram != nil {
		b.Telegram = *upd.Telegram
	}
	if upd.IsWorking != nil {
		b.IsWorking = *upd.IsWorking
	}
	if err := s.db.Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update buyer %d: %w", id, err)
	}
	return b, nil
}

// DeleteBuyer removes the buyer and every triple-link row referencing it.
func (s *Store) DeleteBuyer(id uint) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete buyer: %w", tx.Error)
	}

	var b models.Buyer
	if err := tx.First(&b, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get buyer %d: %w", id, err)
	}
	if err := tx.Where("buyer_id = ?", id).Delete(&models.CountryGroupBuyerLink{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete buyer %d links: %w", id, err)
	}
	if err := tx.Delete(&b).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete buyer %d: %w", id, err)
	}
	return tx.Commit().Error
}
