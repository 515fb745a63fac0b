package db

import (
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// SeedMenu は空のときだけメニューを投入する（再起動しても二重にしない）。
func SeedMenu(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.MenuItem{
		{ID: "ice-1", Type: model.ProductTypeIceCream, Title: "Vanilla Cloud", Price: 15000, Image: "/assets/vanilla-cloud.png", Description: "Classic creamy vanilla with sprinkles", Sort: 1},
		{ID: "ice-2", Type: model.ProductTypeIceCream, Title: "Choco Blast", Price: 18000, Image: "/assets/choco-blast.png", Description: "Rich dark chocolate with chips", Sort: 2},
		{ID: "fry-1", Type: model.ProductTypeFries, Title: "Golden Fries", Price: 12000, Image: "/assets/golden-fries.png", Description: "Crispy straight cut fries", Sort: 3},
		{ID: "fry-2", Type: model.ProductTypeFries, Title: "Curly Twist", Price: 15000, Image: "/assets/curly-twist.png", Description: "Seasoned curly fries", Sort: 4},
		{ID: "photo-1", Type: model.ProductTypePhotobooth, Title: "Photobooth Strip", Price: 20000, Image: "/assets/photobooth.png", Description: "4-pose printed photo strip", Sort: 5},
	}

	addons := []model.AddonOption{
		{Type: model.ProductTypeIceCream, Label: "Oreo Crumbles", Sort: 1},
		{Type: model.ProductTypeIceCream, Label: "Rainbow Sprinkles", Sort: 2},
		{Type: model.ProductTypeIceCream, Label: "Choco Sauce", Sort: 3},
		{Type: model.ProductTypeIceCream, Label: "Strawberry Sauce", Sort: 4},
		{Type: model.ProductTypeFries, Label: "BBQ Powder", Sort: 1},
		{Type: model.ProductTypeFries, Label: "Cheese Sauce", Sort: 2},
		{Type: model.ProductTypeFries, Label: "Balado Spicy", Sort: 3},
		{Type: model.ProductTypeFries, Label: "Sea Salt", Sort: 4},
	}

	sizes := []model.SizeVariant{
		{Type: model.ProductTypeIceCream, Label: "Cone", Surcharge: 0, Sort: 1},
		{Type: model.ProductTypeIceCream, Label: "Cup", Surcharge: 2000, Sort: 2},
		{Type: model.ProductTypeFries, Label: "Small", Surcharge: 0, Sort: 1},
		{Type: model.ProductTypeFries, Label: "Medium", Surcharge: 3000, Sort: 2},
		{Type: model.ProductTypeFries, Label: "Large", Surcharge: 5000, Sort: 3},
		{Type: model.ProductTypePhotobooth, Label: "Standard", Surcharge: 0, Sort: 1},
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if err := tx.Create(&addons).Error; err != nil {
			return err
		}
		if err := tx.Create(&sizes).Error; err != nil {
			return err
		}
		return nil
	})
}
