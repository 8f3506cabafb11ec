package ordersdk

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /auth/registration. BirthDate is a
// plain YYYY-MM-DD date string, passed through untouched.
type RegisterRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
}

// AuthResponse is the shared response of login and registration. The access
// token carries the user's numeric identity in its payload; the refresh token
// is opaque to the client.
type AuthResponse struct {
	Login        string `json:"login"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ============================================================================
// Orders
// ============================================================================

// OrderStatus is the server-side lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCanceled  OrderStatus = "CANCELED"
)

// OrderUser is the owning-user summary embedded in an order.
type OrderUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// OrderItem is one ordered line of an order.
type OrderItem struct {
	ID       int64   `json:"id"`
	ItemID   int64   `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a server-owned order. The client holds read-mostly copies fetched
// per command and discarded afterwards.
type Order struct {
	ID         int64       `json:"id"`
	Status     OrderStatus `json:"status"`
	Deleted    bool        `json:"deleted"`
	TotalPrice float64     `json:"totalPrice"`
	User       OrderUser   `json:"user"`
	OrderItems []OrderItem `json:"orderItems"`
}

// Item is a catalog item.
type Item struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderDraftItem is one requested line when creating or updating an order.
type OrderDraftItem struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

// OrderDraft is the body for POST /orders and PUT /orders/{id}.
type OrderDraft struct {
	UserID int64            `json:"userId"`
	Items  []OrderDraftItem `json:"items"`
}

// ============================================================================
// Payments
// ============================================================================

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentPending PaymentStatus = "PENDING"
)

// Payment is a recorded payment. IDs are strings: payments live in a
// different ID space than orders. Timestamp stays the wire string because the
// server emits zone-less datetimes; display formatting parses it leniently.
type Payment struct {
	ID            string        `json:"id"`
	OrderID       int64         `json:"orderId"`
	UserID        int64         `json:"userId"`
	Status        PaymentStatus `json:"status"`
	Timestamp     string        `json:"timestamp"`
	PaymentAmount float64       `json:"paymentAmount"`
}

// PaymentDraft is the body for POST /payments.
type PaymentDraft struct {
	OrderID       int64   `json:"orderId"`
	UserID        int64   `json:"userId"`
	PaymentAmount float64 `json:"paymentAmount"`
}
