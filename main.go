// Package main is the entry point for the notes CLI.
package main

import "github.com/kelcheone/notes/cmd"

func main() {
	cmd.Execute()
}
