package models

// PersistedState is the single blob written to the key/value store after
// every mutating operation. The catalog is deliberately absent: it is
// regenerated fresh each session.
type PersistedState struct {
	WalletBalance float64       `json:"walletBalance"`
	Transactions  []Transaction `json:"transactions"`
	Cart          []CartItem    `json:"cart"`
}
