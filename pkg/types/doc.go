// Package types defines the Character record, column keys, the Source
// interface, configuration and the standard errors shared by the rmtable
// packages.
package types
