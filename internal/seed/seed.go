package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type departmentSeed struct {
	ID          int
	Name        string
	Description string
}

type categorySeed struct {
	ID           int
	DepartmentID int
	Name         string
	Description  string
}

type productSeed struct {
	ID              int
	Name            string
	Description     string
	Price           string
	DiscountedPrice string
	Image           string
	Thumbnail       string
	CategoryID      int
}

// Apply inserts catalog data for manual testing. Rows carry fixed ids
// and upsert on them, so repeated runs converge on the same catalog.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	departments := []departmentSeed{
		{ID: 1, Name: "Regional", Description: "Proud of your flag? Wear it!"},
		{ID: 2, Name: "Nature", Description: "Wear the wonders of nature."},
		{ID: 3, Name: "Seasonal", Description: "Each time of year brings its own shirt."},
	}
	categories := []categorySeed{
		{ID: 1, DepartmentID: 1, Name: "French", Description: "The French have always had an eye for beauty."},
		{ID: 2, DepartmentID: 1, Name: "Italian", Description: "The full and resplendent treasure chest of Italy."},
		{ID: 3, DepartmentID: 2, Name: "Animal", Description: "Our ever-growing selection of beautiful animal shirts."},
		{ID: 4, DepartmentID: 2, Name: "Flower", Description: "Fresh from the greenhouse."},
		{ID: 5, DepartmentID: 3, Name: "Christmas", Description: "Because there is only one holiday with its own collection."},
	}
	products := []productSeed{
		{
			ID: 1, Name: "Arc d'Triomphe", CategoryID: 1,
			Description:     "This beautiful and iconic T-shirt will no doubt lead you to your own triumph.",
			Price:           "14.99", DiscountedPrice: "0.00",
			Image: "arc-d-triomphe.gif", Thumbnail: "arc-d-triomphe-thumbnail.gif",
		},
		{
			ID: 2, Name: "Chartres Cathedral", CategoryID: 1,
			Description:     "The deep indigo of the rose window offsets the plain cotton around it.",
			Price:           "16.95", DiscountedPrice: "15.95",
			Image: "chartres-cathedral.gif", Thumbnail: "chartres-cathedral-thumbnail.gif",
		},
		{
			ID: 3, Name: "Coat of Arms", CategoryID: 2,
			Description:     "An ancient crest for a modern wardrobe.",
			Price:           "14.50", DiscountedPrice: "0.00",
			Image: "coat-of-arms.gif", Thumbnail: "coat-of-arms-thumbnail.gif",
		},
		{
			ID: 4, Name: "Mercury", CategoryID: 3,
			Description:     "The winged messenger, fastest shirt in the store.",
			Price:           "18.99", DiscountedPrice: "16.99",
			Image: "mercury.gif", Thumbnail: "mercury-thumbnail.gif",
		},
		{
			ID: 5, Name: "Christmas Bear", CategoryID: 5,
			Description:     "A bear in a Santa hat. What more could you ask for?",
			Price:           "12.99", DiscountedPrice: "0.00",
			Image: "christmas-bear.gif", Thumbnail: "christmas-bear-thumbnail.gif",
		},
	}

	for _, d := range departments {
		if err := upsertDepartment(ctx, pool, d); err != nil {
			return fmt.Errorf("upsert department %s: %w", d.Name, err)
		}
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Name, err)
		}
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return bumpSequences(ctx, pool)
}

func upsertDepartment(ctx context.Context, pool *pgxpool.Pool, d departmentSeed) error {
	const q = `
INSERT INTO department (department_id, name, description)
VALUES ($1, $2, $3)
ON CONFLICT (department_id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, d.ID, d.Name, d.Description)
	return err
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO category (category_id, department_id, name, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (category_id) DO UPDATE
SET department_id = EXCLUDED.department_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, c.ID, c.DepartmentID, c.Name, c.Description)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO product (product_id, name, description, price, discounted_price, image, image_2, thumbnail, display)
VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6, $7, $8, 1)
ON CONFLICT (product_id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    discounted_price = EXCLUDED.discounted_price,
    image = EXCLUDED.image,
    image_2 = EXCLUDED.image_2,
    thumbnail = EXCLUDED.thumbnail
`
	if _, err := pool.Exec(ctx, q, p.ID, p.Name, p.Description, p.Price, p.DiscountedPrice, p.Image, p.Image, p.Thumbnail); err != nil {
		return err
	}

	const link = `
INSERT INTO product_category (product_id, category_id)
VALUES ($1, $2)
ON CONFLICT (product_id, category_id) DO NOTHING
`
	_, err := pool.Exec(ctx, link, p.ID, p.CategoryID)
	return err
}

// bumpSequences moves the serial sequences past the fixed seed ids so
// later inserts do not collide with them.
func bumpSequences(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{
		`SELECT setval('department_department_id_seq', (SELECT max(department_id) FROM department))`,
		`SELECT setval('category_category_id_seq', (SELECT max(category_id) FROM category))`,
		`SELECT setval('product_product_id_seq', (SELECT max(product_id) FROM product))`,
	} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bump sequence: %w", err)
		}
	}
	return nil
}
