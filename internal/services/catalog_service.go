package services

import (
	"bakehouse/internal/domain"
	"bakehouse/internal/repos"
	"bakehouse/internal/store"
)

type CatalogService struct {
	Items *repos.ItemRepo
}

func NewCatalogService(items *repos.ItemRepo) *CatalogService {
	return &CatalogService{Items: items}
}

func (s *CatalogService) List() ([]domain.Item, error) {
	return s.Items.List()
}

func (s *CatalogService) Get(id int64) (domain.Item, error) {
	return s.Items.Get(id)
}

// Create validates and persists a new item; the repo assigns the id.
func (s *CatalogService) Create(it domain.Item) (domain.Item, error) {
	if err := store.CheckItem(it); err != nil {
		return domain.Item{}, err
	}
	if it.Status == "" {
		it.Status = domain.StatusActive
	}
	return s.Items.Create(it)
}

// Update merges the patch onto the stored record. Fields absent from the
// patch keep their prior values; the id never changes.
func (s *CatalogService) Update(id int64, patch domain.ItemPatch) (domain.Item, error) {
	if err := store.CheckPatch(patch); err != nil {
		return domain.Item{}, err
	}
	current, err := s.Items.Get(id)
	if err != nil {
		return domain.Item{}, err
	}
	return s.Items.Update(patch.Apply(current))
}

// Delete removes the item outright. Past orders hold their own snapshot
// of sale-time attributes, so history stays intact.
func (s *CatalogService) Delete(id int64) error {
	return s.Items.Delete(id)
}
