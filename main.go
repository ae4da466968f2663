package main

import "github.com/brunacaffaro/cashflowcontrol-backend/cmd"

func main() {
	cmd.Execute()
}
