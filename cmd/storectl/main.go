package main

import "storerating/cmd/storectl/command"

func main() {
	command.Execute()
}
