package main

import "github.com/kasuboski/sceneid/cmd"

func main() {
	cmd.Execute()
}
