package main

import (
	"os"

	"github.com/ryotarai/ec2fleet/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
