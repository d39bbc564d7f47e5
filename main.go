package main

import "github.com/eugeneyalansky/slackshare/cmd"

func main() {
	cmd.Execute()
}
