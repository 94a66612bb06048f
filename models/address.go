package models

// Address is a postal address. It is embedded into users, restaurants and
// orders rather than stored as an independent record.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}
