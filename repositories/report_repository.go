package repositories

import (
	"granja-app/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type Balance struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

func (r *ReportRepository) BalanceForPeriod(from, to string) (Balance, error) {
	var balance Balance
	err := r.db.Model(&models.FinancialMovement{}).
		Select(`COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) as total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) as total_expense,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) as balance`).
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&balance).Error
	return balance, err
}

func (r *ReportRepository) Movements(from, to, movementType string) ([]models.FinancialMovement, error) {
	query := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, created_at DESC")
	if movementType != "" {
		query = query.Where("type = ?", movementType)
	}

	var movements []models.FinancialMovement
	err := query.Find(&movements).Error
	return movements, err
}

type CategoryTotal struct {
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Total     float64 `json:"total"`
	Movements int     `json:"movements"`
}

func (r *ReportRepository) MovementsByCategory(from, to string) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.Model(&models.FinancialMovement{}).
		Select("type, category, COALESCE(SUM(amount), 0) as total, COUNT(*) as movements").
		Where("date BETWEEN ? AND ?", from, to).
		Group("type").Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// income first, then biggest totals
	slices.SortFunc(rows, func(a, b CategoryTotal) int {
		if a.Type != b.Type {
			if a.Type == models.MovementIncome {
				return -1
			}
			return 1
		}
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		}
		return 0
	})

	return rows, nil
}

type DailyProduction struct {
	Date       string `json:"date"`
	GradeC     int    `json:"grade_c"`
	GradeB     int    `json:"grade_b"`
	GradeA     int    `json:"grade_a"`
	GradeAA    int    `json:"grade_aa"`
	GradeAAA   int    `json:"grade_aaa"`
	GradeJumbo int    `json:"grade_jumbo"`
	Total      int    `json:"total"`
}

func (r *ReportRepository) DailyProduction(from, to string) ([]DailyProduction, error) {
	var rows []DailyProduction
	err := r.db.Model(&models.ProductionBatch{}).
		Select(`date,
			SUM(grade_c) as grade_c, SUM(grade_b) as grade_b, SUM(grade_a) as grade_a,
			SUM(grade_aa) as grade_aa, SUM(grade_aaa) as grade_aaa, SUM(grade_jumbo) as grade_jumbo,
			SUM(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo) as total`).
		Where("date BETWEEN ? AND ?", from, to).
		Group("date").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

type DailySales struct {
	Date        string  `json:"date"`
	Sales       int     `json:"sales"`
	TotalEggs   int     `json:"total_eggs"`
	TotalIncome float64 `json:"total_income"`
}

func (r *ReportRepository) DailySales(from, to string) ([]DailySales, error) {
	var rows []DailySales
	err := r.db.Model(&models.Order{}).
		Select(`date, COUNT(*) as sales,
			SUM(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo) as total_eggs,
			COALESCE(SUM(total_price), 0) as total_income`).
		Where("status = ? AND date BETWEEN ? AND ?", models.OrderStatusCompleted, from, to).
		Group("date").
		Order("date").
		Scan(&rows).Error
	return rows, err
}

type TopCustomer struct {
	Name        string  `json:"name"`
	Orders      int     `json:"orders"`
	TotalBought float64 `json:"total_bought"`
	TotalEggs   int     `json:"total_eggs"`
}

func (r *ReportRepository) TopCustomers(from, to string, limit int) ([]TopCustomer, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []TopCustomer
	err := r.db.Table("orders").
		Select(`customers.name, COUNT(orders.id) as orders,
			COALESCE(SUM(orders.total_price), 0) as total_bought,
			SUM(orders.grade_c + orders.grade_b + orders.grade_a +
				orders.grade_aa + orders.grade_aaa + orders.grade_jumbo) as total_eggs`).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.status = ? AND orders.date BETWEEN ? AND ?", models.OrderStatusCompleted, from, to).
		Group("customers.id").Group("customers.name").
		Order("total_bought DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

type ProductionVsSales struct {
	TotalProduced int `json:"total_produced"`
	TotalSold     int `json:"total_sold"`
}

func (r *ReportRepository) ProductionVsSales(from, to string) (ProductionVsSales, error) {
	var summary ProductionVsSales

	err := r.db.Model(&models.ProductionBatch{}).
		Select("COALESCE(SUM(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&summary.TotalProduced).Error
	if err != nil {
		return summary, err
	}

	err = r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo), 0)").
		Where("status = ? AND date BETWEEN ? AND ?", models.OrderStatusCompleted, from, to).
		Scan(&summary.TotalSold).Error
	return summary, err
}

// CostPerEgg divides the feed and wage expenses of the period by the eggs
// produced in it. Zero production reports zero cost instead of dividing.
func (r *ReportRepository) CostPerEgg(from, to string) (float64, error) {
	var expenses float64
	err := r.db.Model(&models.FinancialMovement{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND date BETWEEN ? AND ?", models.MovementExpense, from, to).
		Where("category = ? OR category = ?", "Purchase of "+models.SupplyCategoryFeed, models.CategoryWorkerPayment).
		Scan(&expenses).Error
	if err != nil {
		return 0, err
	}

	var produced int
	err = r.db.Model(&models.ProductionBatch{}).
		Select("COALESCE(SUM(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo), 0)").
		Where("date BETWEEN ? AND ?", from, to).
		Scan(&produced).Error
	if err != nil {
		return 0, err
	}

	if produced == 0 {
		return 0, nil
	}
	return expenses / float64(produced), nil
}

type StockStatistics struct {
	TotalEggs  int `json:"total_eggs"`
	GradeC     int `json:"grade_c"`
	GradeB     int `json:"grade_b"`
	GradeA     int `json:"grade_a"`
	GradeAA    int `json:"grade_aa"`
	GradeAAA   int `json:"grade_aaa"`
	GradeJumbo int `json:"grade_jumbo"`
}

func (r *ReportRepository) StockStatistics() (StockStatistics, error) {
	var stats StockStatistics
	err := r.db.Model(&models.EggStock{}).
		Select(`(grade_c + grade_b + grade_a + grade_aa + grade_aaa + grade_jumbo) as total_eggs,
			grade_c, grade_b, grade_a, grade_aa, grade_aaa, grade_jumbo`).
		Scan(&stats).Error
	return stats, err
}
