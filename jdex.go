// Package jdex keeps a local, freshness-bounded index of Javadoc entries
// scraped from configured sources and serves fuzzy lookup against it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, fuzzy/).
package jdex
