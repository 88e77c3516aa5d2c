package controllers

import (
	"granja-app/models"
	"granja-app/repositories"
	"granja-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductionController struct {
	DB *gorm.DB
}

func NewProductionController(db *gorm.DB) *ProductionController {
	return &ProductionController{DB: db}
}

func (c *ProductionController) CreateProduction(ctx *fiber.Ctx) error {
	var input struct {
		Date       string `json:"date" validate:"required"`
		Time       string `json:"time"`
		GradeC     int    `json:"grade_c" validate:"min=0"`
		GradeB     int    `json:"grade_b" validate:"min=0"`
		GradeA     int    `json:"grade_a" validate:"min=0"`
		GradeAA    int    `json:"grade_aa" validate:"min=0"`
		GradeAAA   int    `json:"grade_aaa" validate:"min=0"`
		GradeJumbo int    `json:"grade_jumbo" validate:"min=0"`
		Notes      string `json:"notes"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Time == "" {
		input.Time = utils.NowTime()
	}

	batch := models.ProductionBatch{
		Date:       input.Date,
		Time:       input.Time,
		GradeC:     input.GradeC,
		GradeB:     input.GradeB,
		GradeA:     input.GradeA,
		GradeAA:    input.GradeAA,
		GradeAAA:   input.GradeAAA,
		GradeJumbo: input.GradeJumbo,
		Notes:      input.Notes,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewProductionRepository(c.DB)
	if err := repo.RecordProduction(&batch); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production recorded successfully", "data": batch})
}

func (c *ProductionController) GetProduction(ctx *fiber.Ctx) error {
	repo := repositories.NewProductionRepository(c.DB)

	if date := ctx.Query("date"); date != "" {
		batches, err := repo.ListByDate(date)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production found", "data": batches})
	}

	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))
	batches, err := repo.ListByDateRange(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production found", "data": batches})
}

func (c *ProductionController) GetTotals(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewProductionRepository(c.DB)
	totals, err := repo.TotalsForPeriod(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Totals found", "data": totals})
}
