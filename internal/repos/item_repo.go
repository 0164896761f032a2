package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"bakehouse/internal/domain"
	"bakehouse/internal/store"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) List() ([]domain.Item, error) {
	out := []domain.Item{}
	err := r.db.Select(&out, `
	  SELECT id, name, category, price,
	         COALESCE(description,'') AS description,
	         COALESCE(image,'') AS image,
	         status
	  FROM items
	  ORDER BY id
	`)
	return out, err
}

func (r *ItemRepo) Get(id int64) (domain.Item, error) {
	var it domain.Item
	err := r.db.Get(&it, `
	  SELECT id, name, category, price,
	         COALESCE(description,'') AS description,
	         COALESCE(image,'') AS image,
	         status
	  FROM items
	  WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, store.ErrNotFound
	}
	return it, err
}

func (r *ItemRepo) Create(it domain.Item) (domain.Item, error) {
	res, err := r.db.Exec(`
	  INSERT INTO items(name, category, price, description, image, status)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, it.Name, it.Category, it.Price, it.Description, it.Image, it.Status)
	if err != nil {
		return domain.Item{}, err
	}
	it.ID, err = res.LastInsertId()
	return it, err
}

// Update writes the already-merged record back. The id is part of the
// WHERE clause only and can never change.
func (r *ItemRepo) Update(it domain.Item) (domain.Item, error) {
	res, err := r.db.Exec(`
	  UPDATE items
	  SET name = ?, category = ?, price = ?, description = ?, image = ?, status = ?
	  WHERE id = ?
	`, it.Name, it.Category, it.Price, it.Description, it.Image, it.Status, it.ID)
	if err != nil {
		return domain.Item{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Item{}, err
	}
	if n == 0 {
		return domain.Item{}, store.ErrNotFound
	}
	return it, nil
}

func (r *ItemRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
