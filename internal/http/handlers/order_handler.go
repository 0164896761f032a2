package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakehouse/internal/domain"
	applog "bakehouse/internal/log"
	"bakehouse/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Orders.List()
	if err != nil {
		return fail(c, "orders.list", err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed order"})
	}
	o.ID = 0 // id and timestamp are store-assigned
	created, err := h.Orders.Create(o)
	if err != nil {
		return fail(c, "orders.create", err)
	}
	applog.Audit(c, "orders.create", map[string]any{
		"id":      created.ID,
		"invoice": created.InvoiceNumber,
		"total":   created.Total,
	})
	return c.JSON(created)
}
