package main

import "github.com/iksnae/activity-recap/cmd"

func main() {
	cmd.Execute()
}
