package main

import "github.com/dbsmedya/filescraper/cmd/filescraper/cmd"

func main() {
	cmd.Execute()
}
