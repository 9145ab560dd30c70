package main

import "github.com/they4kman/sweepcore/cmd"

func main() {
	cmd.Execute()
}
