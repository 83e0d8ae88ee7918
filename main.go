package main

import "github.com/dermee/dermee_backend/cmd"

func main() {
	cmd.Execute()
}
