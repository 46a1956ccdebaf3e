package main

import "github.com/komo3344/airbnb-backend/cmd"

func main() {
	cmd.Execute()
}
