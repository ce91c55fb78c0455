package core

// IDGenerator produces unique identifiers such as order receipts
type IDGenerator interface {
	NewID() string
}
