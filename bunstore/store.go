package bunstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-product-catalog/catalog"
)

// Interface assertion to ensure Store implements catalog.Store
var _ catalog.Store = (*Store)(nil)

// Store is the bun-backed authoritative product store.
type Store struct {
	db bun.IDB
}

// New creates a Store on the given bun database handle.
func New(db bun.IDB) *Store {
	return &Store{db: db}
}

// CreateSchema creates the products table if it does not exist. Intended for
// tests and demos; production schemas are managed by migrations.
func (s *Store) CreateSchema(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*catalog.Product)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Create persists a new product.
func (s *Store) Create(ctx context.Context, p *catalog.Product) error {
	_, err := s.db.NewInsert().Model(p).Exec(ctx)
	return err
}

// GetByID loads a product, reporting catalog.ErrNotFound on absence.
func (s *Store) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	p := new(catalog.Product)
	err := s.db.NewSelect().Model(p).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update persists new field values, reporting catalog.ErrNotFound when no row
// matched the primary key.
func (s *Store) Update(ctx context.Context, p *catalog.Product) error {
	res, err := s.db.NewUpdate().Model(p).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res)
}

// Delete removes the row with the given id, reporting catalog.ErrNotFound
// when it does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.NewDelete().
		Model((*catalog.Product)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return notFoundWhenZero(res)
}

// sortColumns maps canonical sort fields to their SQL columns.
var sortColumns = map[catalog.SortField]string{
	catalog.SortName:      "name",
	catalog.SortPrice:     "price",
	catalog.SortCreatedAt: "created_at",
}

// Query returns one page matching q and the unpaginated total. The keyword
// matches the name case-insensitively on both dialects. Equal sort values
// tie-break on id ascending so pages stay stable across requests.
func (s *Store) Query(ctx context.Context, q catalog.ListingQuery) ([]*catalog.Product, int, error) {
	var items []*catalog.Product

	sel := s.db.NewSelect().Model(&items)
	if q.Keyword != "" {
		sel = sel.Where("lower(name) LIKE ?", "%"+strings.ToLower(q.Keyword)+"%")
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if q.Direction == catalog.Asc {
		direction = "ASC"
	}

	total, err := sel.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Order("id ASC").
		Limit(q.PageSize).
		Offset(q.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func notFoundWhenZero(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
