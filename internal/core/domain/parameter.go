package domain

// Client is a contracting company registered in the parameters backend.
type Client struct {
	Internal          string `json:"internal,omitempty"`
	Created           int64  `json:"created,omitempty"`
	Name              string `json:"name"`
	DocumentMain      string `json:"document_main"`
	AddressStreet     string `json:"address_street"`
	AddressComplement string `json:"address_complement"`
	AddressZip        string `json:"address_zip"`
	AddressDistrict   string `json:"address_district"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	DateStart         string `json:"date_start,omitempty"`
	DateEnd           string `json:"date_end,omitempty"`
}

// Institution is a unit attached to a client. The backend rejects deleting a
// client that still has institutions; the conflict surfaces as an APIError.
type Institution struct {
	Internal          string `json:"internal,omitempty"`
	Created           int64  `json:"created,omitempty"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	DocumentMain      string `json:"document_main"`
	Principal         string `json:"principal"`
	Coordinator       string `json:"coordinator"`
	AddressStreet     string `json:"address_street"`
	AddressComplement string `json:"address_complement"`
	AddressZip        string `json:"address_zip"`
	AddressDistrict   string `json:"address_district"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	ClientGlobalID    string `json:"client_global_id"`
}
