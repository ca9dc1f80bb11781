package main

import "github.com/LoserLab/devourer/cmd"

func main() {
	cmd.Execute()
}
