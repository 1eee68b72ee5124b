// Command heapvis renders memory access logs into BMP frames.
package main

import "github.com/sarchlab/heapvis/heapvis/cmd"

func main() {
	cmd.Execute()
}
