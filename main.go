package main

import "github.com/artracfd/gocfd/cmd"

func main() {
	cmd.Execute()
}
