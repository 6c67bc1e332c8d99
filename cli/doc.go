// Package cli parses the command line, builds the diagnostic logger and maps
// failures to process exit codes.
package cli
