// Package gorm provides the GORM-based implementation of the store
// interfaces defined in the parent store package.
//
// One generic Store serves all three record kinds; the per-kind
// constructors pin the model type. Ids are assigned here (uuid v4), never
// by callers.
package gorm
