package handlers

import (
	"github.com/gofiber/fiber/v2"

	"bakehouse/internal/domain"
	applog "bakehouse/internal/log"
	"bakehouse/internal/services"
	"bakehouse/internal/validate"
)

type ItemHandler struct {
	Catalog *services.CatalogService
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.Catalog.List()
	if err != nil {
		return fail(c, "items.list", err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	it, err := h.Catalog.Get(id)
	if err != nil {
		return fail(c, "items.get", err)
	}
	return c.JSON(it)
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var it domain.Item
	if err := c.BodyParser(&it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed item"})
	}
	it.ID = 0 // the store assigns ids
	created, err := h.Catalog.Create(it)
	if err != nil {
		return fail(c, "items.create", err)
	}
	applog.Audit(c, "items.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.JSON(created)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	var patch domain.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed patch"})
	}
	updated, err := h.Catalog.Update(id, patch)
	if err != nil {
		return fail(c, "items.update", err)
	}
	applog.Audit(c, "items.update", map[string]any{"id": id})
	return c.JSON(updated)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	if err := h.Catalog.Delete(id); err != nil {
		return fail(c, "items.delete", err)
	}
	applog.Audit(c, "items.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}
