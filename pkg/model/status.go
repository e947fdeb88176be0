package model

//go:generate go run github.com/dmarkham/enumer -type Status -trimprefix Status -json -output status.gen.go

// Status marks a credential-like record (API key, password) as usable or
// retired. Notes carry no status.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
)
