package main

import "floorplan/cmd"

func main() {
	cmd.Execute()
}
