package main

import "subshift/cmd/subshift/cmd"

func main() {
	cmd.Execute()
}
