package main

import "github.com/sw33tLie/vitalis/cmd"

func main() {
	cmd.Execute()
}
