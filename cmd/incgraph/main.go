// Command incgraph is a thin CLI wrapper around the network package: it
// loads an edge list and prints, as JSON, either the delta a given flip
// would produce (the flip itself is not applied) or a full from-scratch
// orbit recount.
package main

import "github.com/rcannood/incgraph/cmd/incgraph/commands"

func main() {
	commands.Execute()
}
