// Package resource bounds the cost of loading dictionaries: how many sources
// are fetched concurrently, how many fetched bytes are buffered, and how fast
// they are read.
package resource
