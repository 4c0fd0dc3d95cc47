package main

import (
	"github.com/gw-detchar/omicron-env/pkg/cli"
)

func main() {
	cli.Execute()
}
