package models

// Account is a stored credential record. Salt and Hash are base64 strings so
// the record round-trips through JSON unchanged.
type Account struct {
	Name string `json:"name"`
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}
