package main

import "github.com/musicianhub/musician-services/cmd"

func main() {
	cmd.Execute()
}
