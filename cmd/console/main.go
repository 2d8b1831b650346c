// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command console is the entry point of the library administration console.
//
// Run "console serve" to start the web console and "console ping" to check that
// the library backend is reachable.
package main

import "github.com/taibuivan/librarydesk/cmd/console/command"

func main() {
	command.Execute()
}
