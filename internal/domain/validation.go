package domain

import "net/mail"

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateAirplane checks structural rules only. It is deterministic and
// never touches storage.
func ValidateAirplane(a Airplane) []Violation {
	var violations []Violation
	if a.Model == "" {
		violations = append(violations, Violation{Field: "Model", Message: "Model is required"})
	}
	if a.Weight == "" {
		violations = append(violations, Violation{Field: "Weight", Message: "Weight is required"})
	}
	if a.Manufacturer == "" {
		violations = append(violations, Violation{Field: "Manufacturer", Message: "Manufacturer is required"})
	}
	return violations
}

// ValidateUser checks structural rules only. An empty email reports
// "Email is required"; the format check runs only on non-empty values.
func ValidateUser(u User) []Violation {
	var violations []Violation
	if u.Name == "" {
		violations = append(violations, Violation{Field: "Name", Message: "Name is required"})
	}
	if u.Password == "" {
		violations = append(violations, Violation{Field: "Password", Message: "Password is required"})
	}
	if u.Email == "" {
		violations = append(violations, Violation{Field: "Email", Message: "Email is required"})
	} else if !validEmail(u.Email) {
		violations = append(violations, Violation{Field: "Email", Message: "Invalid email format"})
	}
	return violations
}

func validEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
