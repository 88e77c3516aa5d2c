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

type SupplyController struct {
	DB *gorm.DB
}

func NewSupplyController(db *gorm.DB) *SupplyController {
	return &SupplyController{DB: db}
}

func (c *SupplyController) CreatePurchase(ctx *fiber.Ctx) error {
	var input struct {
		Name         string  `json:"name" validate:"required,min=2"`
		Category     string  `json:"category" validate:"required,oneof=Feed Medicine Maintenance Crates Other"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,oneof=kg bags liters units"`
		UnitCost     float64 `json:"unit_cost" validate:"min=0"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		Supplier     string  `json:"supplier"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supply := models.Supply{
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		UnitCost:     input.UnitCost,
		PurchaseDate: input.PurchaseDate,
		Supplier:     input.Supplier,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewSupplyRepository(c.DB)
	if err := repo.RecordPurchase(&supply); err != nil {
		if errors.Is(err, repositories.ErrInvalidQuantity) || errors.Is(err, repositories.ErrInvalidCategory) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase recorded successfully", "data": supply})
}

func (c *SupplyController) GetPurchases(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewSupplyRepository(c.DB)
	supplies, err := repo.PurchaseHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchases found", "data": supplies})
}

func (c *SupplyController) GetPurchasesByCategory(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewSupplyRepository(c.DB)
	rows, err := repo.PurchasesByCategory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchases found", "data": rows})
}

func (c *SupplyController) GetStockList(ctx *fiber.Ctx) error {
	repo := repositories.NewSupplyRepository(c.DB)
	rows, err := repo.StockList()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": rows})
}

func (c *SupplyController) GetLowStock(ctx *fiber.Ctx) error {
	repo := repositories.NewSupplyRepository(c.DB)
	stocks, err := repo.LowStock()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Low stock found", "data": stocks})
}

func (c *SupplyController) SetMinQuantity(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		MinQuantity float64 `json:"min_quantity" validate:"min=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewSupplyRepository(c.DB)
	if err := repo.SetMinQuantity(uint(id), input.MinQuantity); err != nil {
		if errors.Is(err, repositories.ErrSupplyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Minimum updated successfully"})
}

func (c *SupplyController) CreateConsumption(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Reason   string  `json:"reason"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewSupplyRepository(c.DB)
	if err := repo.RecordConsumption(uint(id), input.Quantity, input.Reason); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSupplyNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrInvalidQuantity):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Consumption recorded successfully"})
}

func (c *SupplyController) GetMovements(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewSupplyRepository(c.DB)
	movements, err := repo.MovementHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Movements found", "data": movements})
}
