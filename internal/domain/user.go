package domain

// User is a registered operator identified by email. The password is stored
// verbatim; see passwordMatches in the auth usecase for the comparison point.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u User) EntityID() string { return u.ID }

func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// UserView is the user shape carried by lifecycle events. Credential material
// never leaves the store through the event channel.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
