// Command fliitsctl is the admin console CLI for the FLIITS car-rental
// platform.
package main

import "github.com/fliits/fliitsctl/pkg/cli"

func main() {
	cli.Execute()
}
