// Package conv converts between integer widths with bounds checks, for values
// that come from flags or configuration.
package conv
