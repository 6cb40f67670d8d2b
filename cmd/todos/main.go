// Command todos is a terminal todo list built on the store bindings.
//
//	todos -config todos.yaml -v=2 -log_dir=/tmp
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/go-drift/redux/cmd/todos/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a todos.yaml or todos.toml (optional)")
	flag.Parse()
	defer glog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{ConfigPath: *configPath}); err != nil {
		glog.Errorf("todos: %v", err)
		fmt.Fprintf(os.Stderr, "todos: %v\n", err)
		return 1
	}
	return 0
}
