/*
littletsp is an exact Travelling Salesman Problem solver built on the
Little branch-and-bound method.

Usage:

	littletsp <command> [flags]

Commands:

	littletsp solve -i instance.toml        Solve an instance and print the tour
	littletsp solve -i instance.toml -t out.json
	                                        Also export the decision trace
	littletsp play -i instance.toml         Replay the trace step by step
	littletsp version                       Print version information

See 'littletsp help <command>' for details.
*/
package main

import (
	"os"

	"github.com/littletsp/littletsp/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
