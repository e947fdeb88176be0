// Package store defines the storage contract for vault records.
//
// This package defines the generic RecordStore interface, allowing the
// managers and endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Usage
//
//	keys := gorm.NewAPIKeyStore(db)
//	records, err := keys.List(ctx, ownerID)
//	if err != nil {
//	    // transport/permission failure; last fetched list stays displayed
//	}
package store
