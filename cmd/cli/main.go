package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/charithe/deskcalc/pkg/calculator"
	humanize "github.com/dustin/go-humanize"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("Calculator CLI", "Desk calculator RPC client")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").String()
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()
	raw       = app.Flag("raw", "Print results without digit grouping").Bool()

	streamCmd = app.Command("stream", "Stream mode")
	batchCmd  = app.Command("batch", "Batch mode")
	batchVars = batchCmd.Flag("var", "Variable binding (name=value)").Short('v').StringMap()
	batchExpr = batchCmd.Arg("expr", "Expression (space separated)").Strings()
	replCmd   = app.Command("repl", "Interactive mode backed by a server session")
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case streamCmd.FullCommand():
		doStream()
	case batchCmd.FullCommand():
		doBatch()
	case replCmd.FullCommand():
		doRepl()
	}
}

func doStream() {
	client, err := createClient()
	if err != nil {
		log.Printf("Failed to connect to server: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	log.Printf("Enter each operator or operand in a new line. Press Ctrl+D to end")

	tokChan := make(chan string)
	go func() {
		defer close(tokChan)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			tokChan <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			log.Printf("Failed to read stream: %v", err)
		}
	}()

	result, err := client.EvaluateStream(tokChan)
	if err != nil {
		log.Printf("Streaming call failed: %v", err)
		os.Exit(1)
	}

	log.Printf("%s = %s", result.History, formatValue(result))
}

func doBatch() {
	vars, err := parseVariables(*batchVars)
	if err != nil {
		log.Printf("Invalid variable: %v", err)
		os.Exit(2)
	}

	client, err := createClient()
	if err != nil {
		log.Printf("Failed to connect to server: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	result, err := client.EvaluateBatch(context.Background(), *batchExpr, vars)
	if err != nil {
		log.Printf("Batch call failed: %v", err)
		os.Exit(1)
	}

	log.Printf("%s = %s", result.History, formatValue(result))
}

func parseVariables(bindings map[string]string) (map[string]float64, error) {
	vars := make(map[string]float64, len(bindings))
	for name, s := range bindings {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		vars[name] = v
	}
	return vars, nil
}

// formatValue renders a result the way a calculator display would, with
// ERROR standing in for a missing result.
func formatValue(result calculator.Result) string {
	if !result.OK {
		return "ERROR"
	}

	if *raw || math.IsInf(result.Value, 0) || math.IsNaN(result.Value) {
		return strconv.FormatFloat(result.Value, 'g', -1, 64)
	}
	return humanize.Commaf(result.Value)
}

func createClient() (*calculator.Client, error) {
	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}
