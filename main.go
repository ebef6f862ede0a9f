package main

import (
	"context"
	"os"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
