// Command djrc runs the career data pipeline. Each stage is a subcommand;
// "all" runs normalize, enrich and careerdb in order.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
