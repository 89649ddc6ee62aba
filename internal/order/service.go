package order

import "errors"

var ErrValidation = errors.New("invalid order")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// Create validates a checkout draft, computes the total from the item
// snapshots and hands the order to the repository, which stamps id, date and
// the Pending status.
func (s *Service) Create(d Draft) (Order, error) {
	if errs := ValidateDraft(d); len(errs) > 0 {
		return Order{}, ErrValidation
	}

	total := 0.0
	for _, item := range d.Items {
		total += item.Price * float64(item.Quantity)
	}

	return s.repo.Create(Order{
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		Address:      d.Address,
		Items:        d.Items,
		TotalAmount:  total,
	})
}

func (s *Service) UpdateStatus(id string, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrValidation
	}
	return s.repo.UpdateStatus(id, status)
}

// AdvanceStatus moves the order one step along the cycle, wrapping from
// Delivered back to Pending.
func (s *Service) AdvanceStatus(id string) (Order, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	return s.repo.UpdateStatus(id, current.Status.Next())
}

func (s *Service) Replace(orders []Order) error {
	return s.repo.Replace(orders)
}

// ValidateDraft checks a checkout submission and returns all failures keyed
// by field.
func ValidateDraft(d Draft) map[string]string {
	errs := map[string]string{}
	if d.CustomerName == "" {
		errs["customerName"] = "customerName is required"
	}
	if d.PhoneNumber == "" {
		errs["phoneNumber"] = "phoneNumber is required"
	}
	if d.Address == "" {
		errs["address"] = "address is required"
	}
	if len(d.Items) == 0 {
		errs["items"] = "order must contain at least one item"
	}
	for _, item := range d.Items {
		if item.Quantity < 1 {
			errs["items"] = "item quantity must be at least 1"
			break
		}
	}
	return errs
}
