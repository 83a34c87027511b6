package main

import "digitalwill/cmd/digitalwill/cmd"

func main() {
	cmd.Execute()
}
