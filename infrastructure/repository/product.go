package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-optimizer-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

const productsTable = "products p"

type ProductRepository interface {
	GetByID(productID string) (*domain.Product, error)
	List() ([]*domain.Product, error)
	Create(product *domain.Product) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByID(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.concept, p.audience, p.created_at").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Concept,
		&product.Audience,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar produto %s: %w", productID, err)
	}

	return product, nil
}

func (r *productRepository) List() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.concept, p.audience, p.created_at").
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Concept, &product.Audience, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) Create(product *domain.Product) error {
	query, args, err := squirrel.
		Insert("products").
		Columns("id", "name", "concept", "audience", "created_at").
		Values(product.ID, product.Name, product.Concept, product.Audience, product.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPQError("erro ao inserir produto", err)
	}

	return nil
}
