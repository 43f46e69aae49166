package main

import "dis/cmd"

func main() {
	cmd.Execute()
}
