// Command partpick-stub serves a fixture catalog over the partpick backend
// contract so the TUI can run without the real service.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/rfhold/partpick/internal/stub"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("partpick-stub", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.StringP("addr", "a", ":8000", "Address to listen on")
	preseed := fs.Bool("preseed", false, "Start with the fixture parts already loaded")
	fixture := fs.StringP("fixture", "f", "", "Fixture file (defaults to the built-in sample catalog)")
	quiet := fs.BoolP("quiet", "q", false, "Disable the access log")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 1
	}

	var (
		f   *stub.Fixture
		err error
	)
	if *fixture != "" {
		f, err = stub.LoadFixture(*fixture)
	} else {
		f, err = stub.DefaultFixture()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := stub.Options{Preseed: *preseed}
	if !*quiet {
		opts.LogOutput = stderr
	}
	srv, err := stub.New(f, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		_ = srv.Shutdown()
	}()

	fmt.Fprintf(stderr, "partpick-stub listening on %s (preseed=%t)\n", *addr, *preseed)
	if err := srv.Listen(*addr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
