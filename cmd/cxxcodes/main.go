// Command cxxcodes normalizes cppcheck XML reports to CXX-W diagnostic codes.
package main

import "os"

func main() {
	os.Exit(Execute())
}
