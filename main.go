package main

import "github.com/yuvrxj-24/sales-analytics-system/cmd"

func main() {
	cmd.Execute()
}
