package main

import "github.com/example/oceanview/cmd"

func main() {
	cmd.Execute()
}
