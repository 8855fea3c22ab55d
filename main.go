package main

import "github.com/ozc/nutrigo/cmd/nutrigo"

func main() {
	nutrigo.Execute()
}
