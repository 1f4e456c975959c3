package main

import "github.com/jjtimmons/gfa/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
