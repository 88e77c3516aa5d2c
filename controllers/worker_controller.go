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

type WorkerController struct {
	DB *gorm.DB
}

func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db}
}

func (c *WorkerController) GetAllWorkers(ctx *fiber.Ctx) error {
	query := c.DB.Order("name")
	if ctx.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var workers []models.Worker
	if err := query.Find(&workers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Workers found", "data": workers})
}

func (c *WorkerController) GetWorkerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var worker models.Worker
	if err := c.DB.First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker found", "data": worker})
}

func (c *WorkerController) CreateWorker(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required,min=2"`
		Role string `json:"role"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	worker := models.Worker{
		Name:      input.Name,
		Role:      input.Role,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&worker).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker created successfully", "data": worker})
}

func (c *WorkerController) UpdateWorker(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Name string `json:"name" validate:"required,min=2"`
		Role string `json:"role"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&models.Worker{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       input.Name,
			"role":       input.Role,
			"updated_by": int(ctx.Locals("userID").(float64)),
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Worker updated successfully", "data": input})
}

func (c *WorkerController) CreatePayment(ctx *fiber.Ctx) error {
	var input struct {
		WorkerID uint    `json:"worker_id" validate:"required"`
		Date     string  `json:"date" validate:"required"`
		Time     string  `json:"time"`
		Amount   float64 `json:"amount" validate:"required,gt=0"`
		Concept  string  `json:"concept"`
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

	payment := models.WorkerPayment{
		WorkerID:  input.WorkerID,
		Date:      input.Date,
		Time:      input.Time,
		Amount:    input.Amount,
		Concept:   input.Concept,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewPaymentRepository(c.DB)
	if err := repo.RecordPayment(&payment); err != nil {
		if errors.Is(err, repositories.ErrWorkerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment recorded successfully", "data": payment})
}

func (c *WorkerController) GetPayments(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewPaymentRepository(c.DB)
	payments, err := repo.History(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payments found", "data": payments})
}

func (c *WorkerController) GetWorkerPayments(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewPaymentRepository(c.DB)
	payments, err := repo.ByWorker(uint(id), from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	total, err := repo.TotalForWorker(uint(id), from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Payments found",
		"data":    fiber.Map{"payments": payments, "total": total},
	})
}
