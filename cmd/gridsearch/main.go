package main

import "github.com/pdrpinto/gridsearch/cmd/gridsearch/cmd"

func main() {
	cmd.Execute()
}
