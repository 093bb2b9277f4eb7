package main

import "rotawear/cmd/rotawear-cli/cmd"

func main() {
	cmd.Execute()
}
