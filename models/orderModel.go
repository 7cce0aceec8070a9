package models

// Order statuses the admin dropdown may set. The backend owns the transition;
// the gateway only patches its cached row optimistically.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

type Order struct {
	ID            int         `json:"id"`
	Code          string      `json:"code"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Telephone     string      `json:"telephone"`
	Location      string      `json:"location"`
	PaymentMethod string      `json:"payment_method"`
	Payed         string      `json:"payed"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"created_at"`
	Items         []OrderItem `json:"items"`
	ShippingCost  float64     `json:"shipping_cost,omitempty"`
	TaxAmount     float64     `json:"tax_amount,omitempty"`
}

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderCreate is the payload POSTed to /vetrine/orders at checkout.
type OrderCreate struct {
	Items         []OrderItem `json:"items"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Telephone     string      `json:"telephone"`
	Location      string      `json:"location"`
	PaymentMethod string      `json:"payment_method"`
}
