// FILE: lixenwraith/inifile/cmd/inictl/main.go

// Command inictl inspects and edits INI-style configuration files.
package main

func main() {
	execute()
}
