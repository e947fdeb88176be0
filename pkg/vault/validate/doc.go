// Package validate gates add/edit payloads before they reach the record
// store. Each form's Validate returns either the persistable record or a
// field-keyed Errors value; a failed validation never results in a store
// call.
package validate
