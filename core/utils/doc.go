// Package utils provides common utility functions for the inventory-manager application.
// It includes typed numeric parsing for loosely typed inputs (form values, key-value
// records, nullable columns) and other shared helpers that don't fit into
// domain-specific packages.
package utils
