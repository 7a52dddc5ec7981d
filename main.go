/*
Copyright © 2026 Thiago Saldanha
*/
package main

import "github.com/tsaldanha/fudgeroll/cmd"

func main() {
	cmd.Execute()
}
