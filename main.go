// Package main is the entry point for the mundial-stats CLI, which serves
// the tournament stats API and prints aggregate reports from the
// configured sheet sources.
package main

import "github.com/jhancoach/mundial-stats/cmd"

func main() {
	cmd.Execute()
}
