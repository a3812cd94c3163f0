// Command mazegen is the CLI front end for the maze generation pipeline.
package main

import "github.com/dshills/mazeforge/cmd/mazegen/cmd"

func main() {
	cmd.Execute()
}
