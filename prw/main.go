package main

import (
	"github.com/cogarch/prw/prw/cmd"
)

func main() {
	cmd.Execute()
}
