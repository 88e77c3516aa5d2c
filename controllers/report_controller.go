package controllers

import (
	"fmt"
	"time"

	"granja-app/repositories"
	"granja-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (c *ReportController) GetBalance(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	balance, err := repo.BalanceForPeriod(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Balance found", "data": balance})
}

func (c *ReportController) GetMovements(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	movements, err := repo.Movements(from, to, ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Movements found", "data": movements})
}

func (c *ReportController) GetMovementsByCategory(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	rows, err := repo.MovementsByCategory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Movements found", "data": rows})
}

func (c *ReportController) GetDailyProduction(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	rows, err := repo.DailyProduction(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production found", "data": rows})
}

func (c *ReportController) GetDailySales(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	rows, err := repo.DailySales(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sales found", "data": rows})
}

func (c *ReportController) GetTopCustomers(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))
	limit := ctx.QueryInt("limit", 10)

	repo := repositories.NewReportRepository(c.DB)
	rows, err := repo.TopCustomers(from, to, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customers found", "data": rows})
}

func (c *ReportController) GetProductionVsSales(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	summary, err := repo.ProductionVsSales(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Summary found", "data": summary})
}

func (c *ReportController) GetCostPerEgg(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	cost, err := repo.CostPerEgg(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cost found", "data": fiber.Map{"cost_per_egg": cost}})
}

func (c *ReportController) GetStockStatistics(ctx *fiber.Ctx) error {
	repo := repositories.NewReportRepository(c.DB)
	stats, err := repo.StockStatistics()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Statistics found", "data": stats})
}

// ExportMovements writes the ledger of the period as an xlsx download.
func (c *ReportController) ExportMovements(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewReportRepository(c.DB)
	movements, err := repo.Movements(from, to, ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Movements"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Movement No", "Date", "Type", "Category", "Amount", "Description", "Ref Table", "Ref ID"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, m := range movements {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), int64(m.MovementNo))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.Category)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.Description)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), m.RefTable)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), m.RefID)
	}

	fileName := fmt.Sprintf("movements_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return nil
}
