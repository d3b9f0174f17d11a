package main

import "os"

func main() {
	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	root := newRootCommand(wiring)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		exitOnErr(root.Name(), err, wiring.stderr)
	}
}
