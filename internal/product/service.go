package product

import "errors"

var ErrValidation = errors.New("invalid product")

// Service validates inputs before they ever reach the repository. The
// repository itself does not re-check these rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	if errs := ValidateNew(p); len(errs) > 0 {
		return Product{}, ErrValidation
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id string, patch Patch) (Product, error) {
	if errs := ValidatePatch(patch); len(errs) > 0 {
		return Product{}, ErrValidation
	}
	return s.repo.Update(id, patch)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) Replace(products []Product) error {
	return s.repo.Replace(products)
}

// ValidateNew checks a product about to be created and returns all failures
// keyed by field.
func ValidateNew(p Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	if len(p.Images) == 0 {
		errs["images"] = "at least one image is required"
	}
	if !validCategory(p.Category) {
		errs["category"] = "invalid category"
	}
	return errs
}

// ValidatePatch checks only the fields the patch actually sets.
func ValidatePatch(patch Patch) map[string]string {
	errs := map[string]string{}
	if patch.Name != nil && *patch.Name == "" {
		errs["name"] = "name cannot be empty"
	}
	if patch.Price != nil && *patch.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	if patch.Images != nil && len(*patch.Images) == 0 {
		errs["images"] = "at least one image is required"
	}
	if patch.Category != nil && !validCategory(*patch.Category) {
		errs["category"] = "invalid category"
	}
	return errs
}
