package main

import "launchdex/cmd/launchdex/cmd"

func main() {
	cmd.Execute()
}
