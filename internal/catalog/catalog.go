package catalog

// Product is one canonical catalog interaction row: a user (UserID) rated or
// purchased a product (ProdID). Products repeat across rows, one row per
// interaction. JSON tags follow the camelCase convention used elsewhere in
// the project.
type Product struct {
	UserID      int64   `json:"userId"`
	ProdID      int64   `json:"prodId"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Tags        string  `json:"tags,omitempty"`
}

// Recommendation is the public DTO every recommendation strategy returns:
// the fixed descriptive column set, nothing strategy-specific.
type Recommendation struct {
	Name        string  `json:"name"`
	ReviewCount int64   `json:"reviewCount"`
	Brand       string  `json:"brand"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// RecommendationFrom projects a product row onto the descriptive column set.
func RecommendationFrom(p Product) Recommendation {
	return Recommendation{
		Name:        p.Name,
		ReviewCount: p.ReviewCount,
		Brand:       p.Brand,
		Rating:      p.Rating,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Category:    p.Category,
	}
}

// Raw column names as they appear in the delimited catalog export.
const (
	ColID          = "ID"
	ColProdID      = "ProdID"
	ColName        = "Name"
	ColBrand       = "Brand"
	ColRating      = "Rating"
	ColReviewCount = "ReviewCount"
	ColImageURL    = "ImageURL"
	ColDescription = "Description"
	ColCategory    = "Category"
	ColTags        = "Tags"
)

// RawProduct is one uncleaned catalog row. A nil field means the value is
// missing (empty cell) or the column is absent from the source entirely;
// RawTable.Columns tells the two cases apart.
type RawProduct struct {
	ID          *string
	ProdID      *string
	Name        *string
	Brand       *string
	Rating      *string
	ReviewCount *string
	ImageURL    *string
	Description *string
	Category    *string
	Tags        *string
}

// RawTable is an uncleaned catalog as loaded from a repository.
type RawTable struct {
	// Columns records which of the known columns the source actually had,
	// so optional columns can degrade by omission instead of dropping rows.
	Columns map[string]bool
	Rows    []RawProduct
}

// Has reports whether the source contained the named column.
func (t RawTable) Has(col string) bool {
	return t.Columns[col]
}
