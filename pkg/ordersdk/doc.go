// Package ordersdk is a typed Go client for the order-management service.
//
// It covers the service's three resource families: authentication (login,
// registration, logout), orders (CRUD plus the catalog listing), and payments
// (create, list by user). Every operation is a thin pass-through: one method
// per endpoint, plain request and response values, no retries, no caching,
// no client-side validation beyond what the server enforces.
//
// # Authentication
//
// The client does not hold tokens itself. It reads the access token through a
// TokenSource before every request, so durable storage stays the source of
// truth and a freshly restarted process authenticates without re-login:
//
//	creds := store.NewCredentials(db) // implements ordersdk.TokenStore
//	client := ordersdk.New("http://localhost:8080", creds)
//
//	resp, err := client.Login(ctx, ordersdk.LoginRequest{
//		Login:    "alice",
//		Password: "secret12",
//	})
//
// Login and Register do not mutate any client state; callers are expected to
// feed the returned tokens into their session layer. Logout removes only the
// persisted token pair - resetting in-memory session state is a separate,
// independently callable primitive owned by the session layer.
//
// # Errors
//
// Failures surface as *APIError when the server responded, carrying the HTTP
// status and the server's message when its error payload has one:
//
//	order, err := client.Order(ctx, 12)
//	var apiErr *ordersdk.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Println(apiErr.StatusCode, apiErr.Message)
//	}
//
// The client does not distinguish expired sessions from other server errors
// and does not force a logout on 401 responses; callers see the APIError and
// decide.
package ordersdk
