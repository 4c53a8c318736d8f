// SPDX-License-Identifier: MIT

// Command pdtool builds phase diagrams from entry files and prints stability
// data about them.
//
//	pdtool stable    entries.csv
//	pdtool decompose entries.csv Li3Fe7O11
//	pdtool ehull     entries.csv [NAME...]
//	pdtool chempots  entries.csv [FORMULA]
//	pdtool profile   entries.csv O LiFeO2
//	pdtool range     entries.csv LiFeO2 --open O [--vertices]
//	pdtool convert   entries.csv entries.yaml
//
// An entries path of "-" reads stdin in the configured format.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
