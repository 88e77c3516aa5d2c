package controllers

import (
	"granja-app/models"
	"granja-app/repositories"
	"granja-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FlockController struct {
	DB *gorm.DB
}

func NewFlockController(db *gorm.DB) *FlockController {
	return &FlockController{DB: db}
}

func (c *FlockController) CreatePopulation(ctx *fiber.Ctx) error {
	var input struct {
		Date      string `json:"date" validate:"required"`
		Time      string `json:"time"`
		BirdCount int    `json:"bird_count" validate:"min=0"`
		Culled    int    `json:"culled" validate:"min=0"`
		Notes     string `json:"notes"`
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

	entry := models.FlockPopulation{
		Date:      input.Date,
		Time:      input.Time,
		BirdCount: input.BirdCount,
		Culled:    input.Culled,
		Notes:     input.Notes,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewFlockRepository(c.DB)
	if err := repo.RecordPopulation(&entry); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Population recorded successfully", "data": entry})
}

func (c *FlockController) GetCurrentPopulation(ctx *fiber.Ctx) error {
	repo := repositories.NewFlockRepository(c.DB)
	entry, err := repo.CurrentPopulation()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Population found", "data": entry})
}

func (c *FlockController) GetPopulationHistory(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewFlockRepository(c.DB)
	entries, err := repo.PopulationHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": entries})
}

func (c *FlockController) CreateConsumption(ctx *fiber.Ctx) error {
	var input struct {
		Date         string  `json:"date" validate:"required"`
		Time         string  `json:"time"`
		PerBirdGrams float64 `json:"per_bird_grams" validate:"min=0"`
		BirdCount    int     `json:"bird_count" validate:"min=0"`
		Notes        string  `json:"notes"`
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

	entry := models.FeedConsumption{
		Date:         input.Date,
		Time:         input.Time,
		PerBirdGrams: input.PerBirdGrams,
		BirdCount:    input.BirdCount,
		Notes:        input.Notes,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewFlockRepository(c.DB)
	if err := repo.RecordFeedConsumption(&entry); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Consumption recorded successfully", "data": entry})
}

func (c *FlockController) GetConsumptionHistory(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewFlockRepository(c.DB)
	entries, err := repo.ConsumptionHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": entries})
}
