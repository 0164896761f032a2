package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"bakehouse/internal/reports"
	"bakehouse/internal/services"
	"bakehouse/internal/validate"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func (h *ReportHandler) filter(c *fiber.Ctx) (reports.Filter, error) {
	start, ok := validate.Date(c.Query("startDate"))
	if !ok {
		return reports.Filter{}, fmt.Errorf("bad startDate")
	}
	end, ok := validate.EndDate(c.Query("endDate"))
	if !ok {
		return reports.Filter{}, fmt.Errorf("bad endDate")
	}
	return reports.Filter{Start: start, End: end, Category: c.Query("category")}, nil
}

func (h *ReportHandler) Report(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	rep, err := h.Reports.Build(f)
	if err != nil {
		return fail(c, "reports.build", err)
	}
	return c.JSON(rep)
}

func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	name := fmt.Sprintf("bakery_report_%s.csv", time.Now().Local().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	if err := h.Reports.ExportCSV(c.Response().BodyWriter(), f); err != nil {
		return fail(c, "reports.csv", err)
	}
	return nil
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Reports.Dashboard()
	if err != nil {
		return fail(c, "reports.dashboard", err)
	}
	return c.JSON(d)
}
