package main

import "github.com/sudostake/onboard/cmd/sessionctl/cmd"

func main() {
	cmd.Execute()
}
