package main

import "github.com/couchbase/tools-logging/internal/cli"

func main() {
	cli.Execute()
}
