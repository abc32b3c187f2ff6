package main

import (
	"os"

	"github.com/trellis-ml/trellis-go/cmd/trellis/app"
)

func main() {
	if err := app.NewTrellisCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
