// Command verify loads the model artifacts the API serves and prints the
// prediction for each text, as an offline check of an artifact pair.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
