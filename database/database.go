package database

import (
	"fmt"

	"github.com/yeremiapane/neo-dine/models"
	"github.com/yeremiapane/neo-dine/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate membuat tabel reference data dan preference visitor
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.MenuCategory{},
		&models.Dish{},
		&models.Chef{},
		&models.KVEntry{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// Seed inserts the catalog. Rows that already exist are left untouched,
// so running it on every start is safe.
func Seed(db *gorm.DB) error {
	categories := append([]models.MenuCategory(nil), seedCategories...)
	dishes := append([]models.Dish(nil), seedDishes...)
	chefs := append([]models.Chef(nil), seedChefs...)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dishes).Error; err != nil {
			return fmt.Errorf("seed dishes: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&chefs).Error; err != nil {
			return fmt.Errorf("seed chefs: %w", err)
		}

		var dishCount, chefCount int64
		tx.Model(&models.Dish{}).Count(&dishCount)
		tx.Model(&models.Chef{}).Count(&chefCount)
		utils.InfoLogger.Printf("Catalog ready: %d dishes, %d chefs", dishCount, chefCount)
		return nil
	})
}

// Setup = Migrate + Seed
func Setup(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(db)
}
