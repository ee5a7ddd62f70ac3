package main

import "member-reconcile/cmd"

func main() {
	cmd.Execute()
}
