package store

// User is the session identity of a signed-in visitor. It is established by
// the login flow and never persisted: accounts live in the external
// credential service.
type User struct {
	Subject     string
	Provider    string
	Email       string
	DisplayName string
	Role        string
}
