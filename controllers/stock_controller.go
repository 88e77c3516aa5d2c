package controllers

import (
	"errors"

	"granja-app/models"
	"granja-app/repositories"
	"granja-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

func (c *StockController) GetStock(ctx *fiber.Ctx) error {
	repo := repositories.NewStockRepository(c.DB)
	stock, err := repo.CurrentStock()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": stock})
}

func (c *StockController) CreateAdjustment(ctx *fiber.Ctx) error {
	var input struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		Kind       string `json:"kind" validate:"required,oneof=shrinkage correction"`
		GradeC     int    `json:"grade_c"`
		GradeB     int    `json:"grade_b"`
		GradeA     int    `json:"grade_a"`
		GradeAA    int    `json:"grade_aa"`
		GradeAAA   int    `json:"grade_aaa"`
		GradeJumbo int    `json:"grade_jumbo"`
		Reason     string `json:"reason"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Date == "" {
		input.Date = utils.Today()
	}
	if input.Time == "" {
		input.Time = utils.NowTime()
	}

	adjustment := models.StockAdjustment{
		Date:       input.Date,
		Time:       input.Time,
		Kind:       input.Kind,
		GradeC:     input.GradeC,
		GradeB:     input.GradeB,
		GradeA:     input.GradeA,
		GradeAA:    input.GradeAA,
		GradeAAA:   input.GradeAAA,
		GradeJumbo: input.GradeJumbo,
		Reason:     input.Reason,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewStockRepository(c.DB)
	if err := repo.RecordAdjustment(&adjustment); err != nil {
		if errors.Is(err, repositories.ErrInvalidKind) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Adjustment recorded successfully", "data": adjustment})
}

func (c *StockController) GetAdjustments(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewStockRepository(c.DB)
	adjustments, err := repo.AdjustmentHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Adjustments found", "data": adjustments})
}
