package model

// Rule describes one detector for listings.
type Rule struct {
	Name        string
	Severity    Severity
	Description string
}
