package main

import (
	"github.com/bacalhau-project/amiaudit/cmd"
)

func main() {
	cmd.Execute()
}
