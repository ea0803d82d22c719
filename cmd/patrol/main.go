// Command patrol reads a city from stdin and prints the minimal patrol
// tour as a U/D/L/R move string.
//
//	patrol < city.txt
//	patrol -v -input city.txt
//
// Any error is fatal: it is logged on stderr and the exit status is 1.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	patrol "github.com/katalvlaran/citypatrol"
)

var log = logrus.New()

func main() {
	verbose := flag.Bool("v", false, "log search progress to stderr")
	input := flag.String("input", "", "read the city from this file instead of stdin")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.WithField("path", *input).Fatal(err)
		}
		defer f.Close()
		r = f
	}

	if err := patrol.Run(r, os.Stdout, patrol.WithLogger(log)); err != nil {
		log.Fatal(err)
	}
}
