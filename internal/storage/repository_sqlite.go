package storage

import (
	"github.com/siddharth-09/card-arena/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) RecordBattleResult(rec *game.BattleRecord) error {
	rec.WinnerAddress = game.NormalizeAddress(rec.WinnerAddress)
	rec.LoserAddress = game.NormalizeAddress(rec.LoserAddress)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		if err := applyResult(tx, rec.WinnerAddress, 1, 0, rec.StakeAmount); err != nil {
			return err
		}
		return applyResult(tx, rec.LoserAddress, 0, 1, -rec.StakeAmount)
	})
}

// applyResult upserts the profile row and adds the deltas.
func applyResult(tx *gorm.DB, address string, wins, losses int, earnings float64) error {
	var p game.PlayerProfile
	if err := tx.Where("address = ?", address).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = game.PlayerProfile{Address: address}
	}
	p.Wins += wins
	p.Losses += losses
	p.Earnings += earnings
	return tx.Save(&p).Error
}

func (r *sqliteRepository) GetStatsByAddress(address string) (*game.PlayerProfile, error) {
	address = game.NormalizeAddress(address)
	var p game.PlayerProfile
	if err := r.db.Where("address = ?", address).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &game.PlayerProfile{Address: address}, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 50
	}
	var players []game.PlayerProfile
	if err := r.db.Model(&game.PlayerProfile{}).
		Where("wins > 0").
		Order("wins DESC").
		Order("earnings DESC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *sqliteRepository) UpsertProfile(address, username string) error {
	address = game.NormalizeAddress(address)
	var p game.PlayerProfile
	if err := r.db.Where("address = ?", address).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = game.PlayerProfile{Address: address}
	}
	p.Username = username
	return r.db.Save(&p).Error
}
