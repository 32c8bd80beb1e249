// Package sqlite provides the span persistence adapter backed by SQLite.
//
// The store is service-owned: it holds the spans ingested for each
// project and answers the existence and summary queries the web modules
// need.
package sqlite
