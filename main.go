package main

import "github.com/Conceptual-Machines/piano-chords/cmd"

func main() {
	cmd.Execute()
}
