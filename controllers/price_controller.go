package controllers

import (
	"errors"
	"strconv"

	"granja-app/models"
	"granja-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PriceController struct {
	DB *gorm.DB
}

func NewPriceController(db *gorm.DB) *PriceController {
	return &PriceController{DB: db}
}

func (c *PriceController) GetActivePrice(ctx *fiber.Ctx) error {
	repo := repositories.NewPriceRepository(c.DB)
	price, err := repo.ActivePrice()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active price"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Price found", "data": price})
}

func (c *PriceController) CreatePrice(ctx *fiber.Ctx) error {
	var input struct {
		EffectiveDate string  `json:"effective_date" validate:"required"`
		PriceC        float64 `json:"price_c" validate:"min=0"`
		PriceB        float64 `json:"price_b" validate:"min=0"`
		PriceA        float64 `json:"price_a" validate:"min=0"`
		PriceAA       float64 `json:"price_aa" validate:"min=0"`
		PriceAAA      float64 `json:"price_aaa" validate:"min=0"`
		PriceJumbo    float64 `json:"price_jumbo" validate:"min=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price := models.EggPrice{
		EffectiveDate: input.EffectiveDate,
		PriceC:        input.PriceC,
		PriceB:        input.PriceB,
		PriceA:        input.PriceA,
		PriceAA:       input.PriceAA,
		PriceAAA:      input.PriceAAA,
		PriceJumbo:    input.PriceJumbo,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewPriceRepository(c.DB)
	if err := repo.CreatePrice(&price); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Price created successfully", "data": price})
}

func (c *PriceController) GetHistory(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	repo := repositories.NewPriceRepository(c.DB)
	prices, err := repo.History(limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": prices})
}
