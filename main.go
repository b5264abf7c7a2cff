package main

import "github.com/uriel-olayinka/sudomines/cmd"

func main() {
	cmd.Execute()
}
