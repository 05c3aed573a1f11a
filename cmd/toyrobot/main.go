// Command toyrobot drives a robot around a 5x5 table from a command script.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
