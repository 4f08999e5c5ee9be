// main package for dartshake command-line tool
// Package main is the entry point for the dartshake CLI.
package main

import "dartshake.dev/pkg/dartshake/cmd"

func main() {
	cmd.Execute()
}
