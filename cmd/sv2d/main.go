package main

import "sv2/cmd/sv2d/cmd"

func main() {
	cmd.Execute()
}
