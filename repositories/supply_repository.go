package repositories

import (
	"errors"
	"time"

	"granja-app/controllers/idgen"
	"granja-app/models"
	"granja-app/types"

	"gorm.io/gorm"
)

type SupplyRepository struct {
	db *gorm.DB
}

func NewSupplyRepository(db *gorm.DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

var supplyCategories = map[string]bool{
	models.SupplyCategoryFeed:        true,
	models.SupplyCategoryMedicine:    true,
	models.SupplyCategoryMaintenance: true,
	models.SupplyCategoryCrates:      true,
	models.SupplyCategoryOther:       true,
}

// RecordPurchase registers a supply purchase. In one transaction it inserts
// the purchase row, posts the expense and accumulates the supply stock,
// keyed by supply name so repeat purchases land on the same row. The total
// cost is always recomputed from quantity and unit cost.
func (r *SupplyRepository) RecordPurchase(supply *models.Supply) error {
	if supply.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !supplyCategories[supply.Category] {
		return ErrInvalidCategory
	}

	supply.TotalCost = supply.Quantity * supply.UnitCost

	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(supply).Error; err != nil {
		tx.Rollback()
		return err
	}

	movement := models.FinancialMovement{
		MovementNo:  types.SnowflakeID(idgen.GenerateID()),
		Date:        supply.PurchaseDate,
		Type:        models.MovementExpense,
		Category:    "Purchase of " + supply.Category,
		Amount:      supply.TotalCost,
		Description: supply.Name,
		RefTable:    models.RefTableSupplies,
		RefID:       supply.ID,
	}
	if err := tx.Create(&movement).Error; err != nil {
		tx.Rollback()
		return err
	}

	var stock models.SupplyStock
	err := tx.Where("supply_name = ?", supply.Name).First(&stock).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return err
		}
		stock = models.SupplyStock{
			SupplyName: supply.Name,
			Category:   supply.Category,
			Unit:       supply.Unit,
			Quantity:   supply.Quantity,
		}
		if err := tx.Create(&stock).Error; err != nil {
			tx.Rollback()
			return err
		}
	} else {
		// Existing row keeps its minimum threshold
		stock.Quantity += supply.Quantity
		if err := tx.Save(&stock).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	entry := models.SupplyMovement{
		Date:          supply.PurchaseDate,
		Time:          time.Now().Format("15:04:05"),
		SupplyStockID: stock.ID,
		Kind:          models.SupplyMovementIn,
		Quantity:      supply.Quantity,
		Reason:        "Purchase",
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// RecordConsumption deducts from a supply stock and logs the outgoing
// movement in one transaction.
func (r *SupplyRepository) RecordConsumption(supplyStockID uint, quantity float64, reason string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return errors.New("failed to start transaction")
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	var stock models.SupplyStock
	if err := tx.First(&stock, supplyStockID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplyNotFound
		}
		return err
	}

	stock.Quantity -= quantity
	if err := tx.Save(&stock).Error; err != nil {
		tx.Rollback()
		return err
	}

	now := time.Now()
	entry := models.SupplyMovement{
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04:05"),
		SupplyStockID: stock.ID,
		Kind:          models.SupplyMovementOut,
		Quantity:      quantity,
		Reason:        reason,
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

type SupplyStockRow struct {
	ID          uint    `json:"id"`
	SupplyName  string  `json:"supply_name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	MinQuantity float64 `json:"min_quantity"`
	LowStock    bool    `json:"low_stock"`
}

func (r *SupplyRepository) StockList() ([]SupplyStockRow, error) {
	var rows []SupplyStockRow
	err := r.db.Model(&models.SupplyStock{}).
		Select(`id, supply_name, category, unit, quantity, min_quantity,
			CASE WHEN quantity <= min_quantity THEN 1 ELSE 0 END as low_stock`).
		Order("category, supply_name").
		Scan(&rows).Error
	return rows, err
}

// LowStock returns the supplies at or below their minimum threshold.
func (r *SupplyRepository) LowStock() ([]models.SupplyStock, error) {
	var stocks []models.SupplyStock
	err := r.db.Where("quantity <= min_quantity").
		Order("category, supply_name").
		Find(&stocks).Error
	return stocks, err
}

func (r *SupplyRepository) SetMinQuantity(supplyStockID uint, minQuantity float64) error {
	result := r.db.Model(&models.SupplyStock{}).
		Where("id = ?", supplyStockID).
		Update("min_quantity", minQuantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplyNotFound
	}
	return nil
}

func (r *SupplyRepository) MovementHistory(from, to string) ([]models.SupplyMovement, error) {
	var movements []models.SupplyMovement
	err := r.db.Preload("SupplyStock").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, time DESC").
		Find(&movements).Error
	return movements, err
}

func (r *SupplyRepository) PurchaseHistory(from, to string) ([]models.Supply, error) {
	var supplies []models.Supply
	err := r.db.Where("purchase_date BETWEEN ? AND ?", from, to).
		Order("purchase_date DESC").
		Find(&supplies).Error
	return supplies, err
}

type CategoryPurchases struct {
	Category   string  `json:"category"`
	Purchases  int     `json:"purchases"`
	TotalSpent float64 `json:"total_spent"`
}

func (r *SupplyRepository) PurchasesByCategory(from, to string) ([]CategoryPurchases, error) {
	var rows []CategoryPurchases
	err := r.db.Model(&models.Supply{}).
		Select("category, COUNT(*) as purchases, COALESCE(SUM(total_cost), 0) as total_spent").
		Where("purchase_date BETWEEN ? AND ?", from, to).
		Group("category").
		Order("total_spent DESC").
		Scan(&rows).Error
	return rows, err
}
