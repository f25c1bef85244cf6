package models

// Color is an entry of the pole color catalog.
type Color struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is a pole that can be assigned for inspection.
type Post struct {
	ID        int64   `json:"id"`
	Code      string  `json:"codigo"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"direccion"`
	Type      string  `json:"tipo"`
	CompanyID int64   `json:"companyId"`
}

// ReplaceScope narrows which locally synced rows a bulk replace removes.
// Zero fields do not filter; a zero ReplaceScope covers the whole collection.
type ReplaceScope struct {
	// TechnicianID limits inspection replacement to one technician.
	TechnicianID int64

	// CompanyID limits post replacement to one company.
	CompanyID int64
}
