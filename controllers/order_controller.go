package controllers

import (
	"errors"
	"strconv"

	"granja-app/models"
	"granja-app/repositories"
	"granja-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderInput struct {
	CustomerID uint    `json:"customer_id" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Time       string  `json:"time"`
	GradeC     int     `json:"grade_c" validate:"min=0"`
	GradeB     int     `json:"grade_b" validate:"min=0"`
	GradeA     int     `json:"grade_a" validate:"min=0"`
	GradeAA    int     `json:"grade_aa" validate:"min=0"`
	GradeAAA   int     `json:"grade_aaa" validate:"min=0"`
	GradeJumbo int     `json:"grade_jumbo" validate:"min=0"`
	TotalPrice float64 `json:"total_price" validate:"min=0"`
	Notes      string  `json:"notes"`
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input orderInput
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

	order := models.Order{
		CustomerID: input.CustomerID,
		Date:       input.Date,
		Time:       input.Time,
		GradeC:     input.GradeC,
		GradeB:     input.GradeB,
		GradeA:     input.GradeA,
		GradeAA:    input.GradeAA,
		GradeAAA:   input.GradeAAA,
		GradeJumbo: input.GradeJumbo,
		TotalPrice: input.TotalPrice,
		Notes:      input.Notes,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewOrderRepository(c.DB)
	if err := repo.CreateOrder(&order); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

func (c *OrderController) GetOrders(ctx *fiber.Ctx) error {
	customerID, _ := strconv.Atoi(ctx.Query("customer_id", "0"))

	filter := repositories.OrderFilter{
		Status:     ctx.Query("status"),
		CustomerID: uint(customerID),
		DateFrom:   ctx.Query("from"),
		DateTo:     ctx.Query("to"),
	}

	repo := repositories.NewOrderRepository(c.DB)
	orders, err := repo.ListOrders(filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Orders found", "data": orders})
}

func (c *OrderController) GetPendingOrders(ctx *fiber.Ctx) error {
	repo := repositories.NewOrderRepository(c.DB)
	orders, err := repo.PendingOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Orders found", "data": orders})
}

func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewOrderRepository(c.DB)
	order, err := repo.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order found", "data": order})
}

func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input orderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order := models.Order{
		GradeC:     input.GradeC,
		GradeB:     input.GradeB,
		GradeA:     input.GradeA,
		GradeAA:    input.GradeAA,
		GradeAAA:   input.GradeAAA,
		GradeJumbo: input.GradeJumbo,
		TotalPrice: input.TotalPrice,
		Notes:      input.Notes,
		UpdatedBy:  int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewOrderRepository(c.DB)
	if err := repo.UpdateOrder(uint(id), &order); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrOrderNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order updated successfully", "data": input})
}

func (c *OrderController) CancelOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewOrderRepository(c.DB)
	if err := repo.CancelOrder(uint(id)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrOrderNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order cancelled successfully"})
}

func (c *OrderController) CreateDispatch(ctx *fiber.Ctx) error {
	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

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

	dispatch := models.Dispatch{
		OrderID:    uint(orderID),
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

	repo := repositories.NewOrderRepository(c.DB)
	if err := repo.RecordDispatch(&dispatch); err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrOrderNotPending):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, repositories.ErrInsufficientStock):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dispatch recorded successfully", "data": dispatch})
}

func (c *OrderController) GetSalesHistory(ctx *fiber.Ctx) error {
	from, to := utils.DateRange(ctx.Query("from"), ctx.Query("to"))

	repo := repositories.NewOrderRepository(c.DB)
	sales, err := repo.SalesHistory(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sales found", "data": sales})
}
