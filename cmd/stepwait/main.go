// Package main provides the entry point for the stepwait CLI.
//
// stepwait is a GitHub Actions step that waits a designated number of
// milliseconds, reports the finish time as the "time" output, and writes a
// job summary. Outside GitHub Actions it runs against the terminal.
//
// Usage:
//
//	stepwait run
//	stepwait run --milliseconds 500
//	stepwait init
//
// See --help for all available options.
package main

// main is the entry point for stepwait.
func main() {
	Execute()
}
