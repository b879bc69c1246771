package handler

// --- Request types ---

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addressPayload struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type updateProfileRequest struct {
	Name        string          `json:"name,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	DateOfBirth string          `json:"dateOfBirth,omitempty"`
	Address     *addressPayload `json:"address,omitempty"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// --- Response types ---

// userResponse is the public view of an account. The password hash is never
// part of it; address renders as null when unset.
type userResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Phone       string          `json:"phone"`
	DateOfBirth string          `json:"dateOfBirth"`
	Address     *addressPayload `json:"address"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}
