package services

import (
	"io"
	"time"

	"bakehouse/internal/repos"
	"bakehouse/internal/reports"
)

type ReportService struct {
	Items  *repos.ItemRepo
	Orders *repos.OrderRepo
}

func NewReportService(items *repos.ItemRepo, orders *repos.OrderRepo) *ReportService {
	return &ReportService{Items: items, Orders: orders}
}

// Build reloads the full order log and recomputes every rollup. Small
// single-outlet volumes make recompute-on-demand fine.
func (s *ReportService) Build(f reports.Filter) (reports.Report, error) {
	orders, err := s.Orders.List()
	if err != nil {
		return reports.Report{}, err
	}
	return reports.Build(orders, f, time.Now()), nil
}

// ExportCSV streams the filtered order log as CSV rows.
func (s *ReportService) ExportCSV(w io.Writer, f reports.Filter) error {
	orders, err := s.Orders.List()
	if err != nil {
		return err
	}
	return reports.WriteCSV(w, reports.Apply(orders, f))
}

func (s *ReportService) Dashboard() (reports.Dashboard, error) {
	items, err := s.Items.List()
	if err != nil {
		return reports.Dashboard{}, err
	}
	orders, err := s.Orders.List()
	if err != nil {
		return reports.Dashboard{}, err
	}
	return reports.BuildDashboard(items, orders, time.Now()), nil
}
