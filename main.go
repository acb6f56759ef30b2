package main

import "ddrconf/cmd"

func main() {
	cmd.Execute()
}
