// Package file provides a file-based implementation of the config store.
// Configuration is persisted as TOML in the murshid config directory.
package file
