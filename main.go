package main

import "github.com/calbisu/menumind/cmd"

func main() {
	cmd.Execute()
}
