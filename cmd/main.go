package main

import "github.com/yungbote/portfolio-assistant/internal/cmd"

func main() {
	cmd.Execute()
}
