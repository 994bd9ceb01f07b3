package domain

// User represents a registered customer.
// The scheduling core only reads users to resolve display names.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
