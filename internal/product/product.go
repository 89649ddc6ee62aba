package product

// Product is a catalog item. Image entries are either public URLs or base64
// data URLs produced by the imaging endpoint.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

// Categories are a closed set; the storefront navigation is built from them.
const (
	CategoryEarrings  = "حلق"
	CategoryRings     = "خاتم"
	CategoryNecklaces = "قلادة"
)

var AllowedCategories = []string{
	CategoryEarrings,
	CategoryRings,
	CategoryNecklaces,
}

func validCategory(c string) bool {
	for _, allowed := range AllowedCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

// Patch lists the fields an update may change. Nil fields are left untouched.
// Images is whole-value replace: when present the entire slice overwrites the
// stored one, there is no per-element merge.
type Patch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Category    *string   `json:"category,omitempty"`
}

func (p Patch) apply(dst Product) Product {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Images != nil {
		dst.Images = *p.Images
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	return dst
}
