package main

import (
	"context"
	"fmt"
	"os"

	"text-summarizer/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "text-summarizer: %v\n", err)
		os.Exit(1)
	}
}
