package domain

// Airplane is a registered aircraft without persistence concerns. Weight is
// free text because it carries its unit (e.g. "41140 Kg").
type Airplane struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Weight       string `json:"weight"`
	Manufacturer string `json:"manufacturer"`
}

func (a Airplane) EntityID() string { return a.ID }

func (a Airplane) WithID(id string) Airplane {
	a.ID = id
	return a
}
