package main

import "github.com/vibast-solutions/ms-go-cloud-plans/cmd"

func main() {
	cmd.Execute()
}
