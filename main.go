package main

import "github.com/nickraymond/streamlit-mooring-tools/cmd"

func main() {
	cmd.Execute()
}
