package main

import "serde-api/cmd"

func main() {
	cmd.Execute()
}
