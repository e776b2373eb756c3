package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"tshirtshop/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, name, email, password_hash, credit_card, address_1, address_2,
       city, region, postal_code, country, shipping_region_id, day_phone, eve_phone, mob_phone`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customer (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, in.Name, strings.ToLower(in.Email), in.PasswordHash))
}

func (r *postgresRepo) FindOrCreateByEmail(ctx context.Context, in CreateInput) (*domain.Customer, bool, error) {
	// Single-statement find-or-create: a no-op DO UPDATE lets RETURNING
	// yield the existing row, and xmax = 0 distinguishes a fresh insert.
	const q = `
INSERT INTO customer (name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING ` + customerColumns + `, (xmax = 0) AS created`
	var c domain.Customer
	var created bool
	err := r.pool.QueryRow(ctx, q, in.Name, strings.ToLower(in.Email), in.PasswordHash).Scan(
		append(customerDest(&c), &created)...,
	)
	if err != nil {
		r.logger.Printf("customer repo: find-or-create email=%s err=%v", in.Email, err)
		return nil, false, err
	}
	return &c, created, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customer
WHERE lower(email) = lower($1)
LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	const q = `
SELECT ` + customerColumns + `
FROM customer
WHERE customer_id = $1
LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET name          = COALESCE($2, name),
    email         = COALESCE(lower($3), email),
    password_hash = COALESCE($4, password_hash),
    day_phone     = COALESCE($5, day_phone),
    eve_phone     = COALESCE($6, eve_phone),
    mob_phone     = COALESCE($7, mob_phone)
WHERE customer_id = $1
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id,
		upd.Name, upd.Email, upd.PasswordHash, upd.DayPhone, upd.EvePhone, upd.MobPhone))
}

func (r *postgresRepo) UpdateAddress(ctx context.Context, id int, upd AddressUpdate) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET address_1          = COALESCE($2, address_1),
    address_2          = COALESCE($3, address_2),
    city               = COALESCE($4, city),
    region             = COALESCE($5, region),
    postal_code        = COALESCE($6, postal_code),
    country            = COALESCE($7, country),
    shipping_region_id = COALESCE($8, shipping_region_id)
WHERE customer_id = $1
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id,
		upd.Address1, upd.Address2, upd.City, upd.Region, upd.PostalCode, upd.Country, upd.ShippingRegionID))
}

func (r *postgresRepo) UpdateCreditCard(ctx context.Context, id int, cardNumber string) (*domain.Customer, error) {
	const q = `
UPDATE customer
SET credit_card = $2
WHERE customer_id = $1
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id, cardNumber))
}

func customerDest(c *domain.Customer) []interface{} {
	return []interface{}{
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PasswordHash,
		&c.CreditCard,
		&c.Address1,
		&c.Address2,
		&c.City,
		&c.Region,
		&c.PostalCode,
		&c.Country,
		&c.ShippingRegionID,
		&c.DayPhone,
		&c.EvePhone,
		&c.MobPhone,
	}
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(customerDest(&c)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
