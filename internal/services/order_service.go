package services

import (
	"bakehouse/internal/domain"
	"bakehouse/internal/repos"
)

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.Orders.List()
}

// Create appends a completed sale. Id and timestamp are assigned by the
// store; everything else is the caller's frozen invoice, passed through
// verbatim.
func (s *OrderService) Create(o domain.Order) (domain.Order, error) {
	if o.CustomerName == "" {
		o.CustomerName = domain.WalkInCustomer
	}
	if o.Items == nil {
		o.Items = []domain.OrderLine{}
	}
	return s.Orders.Create(o)
}
