package order

// Status walks a fixed cycle: Pending → Processed → Shipped → Delivered and
// back to Pending. The admin console only ever advances, never jumps.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusProcessed Status = "Processed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

// Next returns the status that follows s in the cycle.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusProcessed
	case StatusProcessed:
		return StatusShipped
	case StatusShipped:
		return StatusDelivered
	default:
		return StatusPending
	}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// Item is a line of an order. Name, price and image are snapshots taken at
// checkout; deleting the product later does not touch them, and the product
// reference is not checked after that point.
type Item struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ProductImage string  `json:"productImage"`
}

// Order is a customer purchase. TotalAmount equals the item snapshot sum at
// creation time and is never recomputed. OrderDate is RFC 3339.
type Order struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	PhoneNumber  string  `json:"phoneNumber"`
	Address      string  `json:"address"`
	Items        []Item  `json:"items"`
	TotalAmount  float64 `json:"totalAmount"`
	OrderDate    string  `json:"orderDate"`
	Status       Status  `json:"status"`
}

// Draft is what a checkout submission carries. Identifier, date, status and
// total are assigned server-side.
type Draft struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	Items        []Item `json:"items"`
}
