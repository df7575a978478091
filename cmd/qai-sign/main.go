// Package main is a debug CLI that computes the signed query fragment for
// a QAI API request without issuing any network call. Useful for
// comparing client output against a server-side verifier.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shaoqingyang/qingcloud-sdk-go/internal/pkg/crypto"
	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

// paramFlags collects repeated -p key=value flags.
// A value containing commas becomes a list parameter; the literal values
// "true" and "false" become booleans.
type paramFlags struct {
	params signature.Params
}

func (p *paramFlags) String() string {
	return fmt.Sprintf("%d parameters", len(p.params))
}

func (p *paramFlags) Set(arg string) error {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return fmt.Errorf("parameter must be key=value, got %q", arg)
	}

	switch {
	case value == "true":
		p.params[key] = signature.Bool(true)
	case value == "false":
		p.params[key] = signature.Bool(false)
	case strings.Contains(value, ","):
		p.params[key] = signature.Strings(strings.Split(value, ",")...)
	default:
		p.params[key] = signature.String(value)
	}
	return nil
}

func main() {
	method := flag.String("method", "GET", "HTTP method (GET, POST, DELETE)")
	path := flag.String("path", "", "URL path to sign (required)")
	ak := flag.String("ak", "", "access key ID (random throwaway pair if omitted)")
	sk := flag.String("sk", "", "secret key")

	params := &paramFlags{params: signature.Params{}}
	flag.Var(params, "p", "request parameter as key=value (repeatable; comma-separated values form a list)")

	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "error: -path is required")
		flag.Usage()
		os.Exit(2)
	}

	accessKey, secretKey := *ak, *sk
	if accessKey == "" && secretKey == "" {
		var err error
		accessKey, secretKey, err = crypto.GenerateAccessKeyPair()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("access_key_id: %s\n", accessKey)
		fmt.Printf("secret_key:    %s\n", secretKey)
	}

	fragment, err := signature.Generate(*method, *path, accessKey, secretKey, params.params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("signed query:  %s\n", fragment)
	fmt.Printf("full path:     %s?%s\n", *path, fragment)
}
