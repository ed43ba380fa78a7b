package catalog

import (
	"database/sql"
)

// PostgresRepository loads the catalog from Postgres. The interaction rows
// are stored as-is (text columns), so they go through the same Clean
// pipeline as a CSV export.
type PostgresRepository struct {
	db *sql.DB
}

const (
	loadCatalogQuery = `
		SELECT id, prod_id, name, brand, rating, review_count, image_url, description, category, tags
		FROM catalog
		ORDER BY row_id
	`
	// older deployments kept the raw export in a `clean_data` table with the
	// original CSV header casing
	loadLegacyCatalogQuery = `
		SELECT "ID", "ProdID", "Name", "Brand", "Rating", "ReviewCount", "ImageURL", "Description", "Category", "Tags"
		FROM clean_data
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load() (RawTable, error) {
	rows, err := r.db.Query(loadCatalogQuery)
	if err != nil {
		// fallback to the legacy table if the modern `catalog` table is missing
		rows, err = r.db.Query(loadLegacyCatalogQuery)
		if err != nil {
			return RawTable{}, err
		}
	}
	defer rows.Close()

	table := RawTable{Columns: map[string]bool{
		ColID: true, ColProdID: true, ColName: true, ColBrand: true,
		ColRating: true, ColReviewCount: true, ColImageURL: true,
		ColDescription: true, ColCategory: true, ColTags: true,
	}}

	for rows.Next() {
		var (
			id, prodID, name, brand       sql.NullString
			rating, reviewCount, imageURL sql.NullString
			description, category, tags   sql.NullString
		)
		if err := rows.Scan(&id, &prodID, &name, &brand, &rating, &reviewCount, &imageURL, &description, &category, &tags); err != nil {
			continue
		}
		table.Rows = append(table.Rows, RawProduct{
			ID:          nullable(id),
			ProdID:      nullable(prodID),
			Name:        nullable(name),
			Brand:       nullable(brand),
			Rating:      nullable(rating),
			ReviewCount: nullable(reviewCount),
			ImageURL:    nullable(imageURL),
			Description: nullable(description),
			Category:    nullable(category),
			Tags:        nullable(tags),
		})
	}
	if err := rows.Err(); err != nil {
		return RawTable{}, err
	}

	return table, nil
}

func nullable(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	s := v.String
	return &s
}
