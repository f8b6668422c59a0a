// Command cronexpand prints the values matched by each field of a cron expression.
package main

import (
	"fmt"
	"os"

	"github.com/rcliao/cronexpand/pkg/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
