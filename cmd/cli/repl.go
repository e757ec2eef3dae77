package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charithe/deskcalc/pkg/calculator"
	"github.com/chzyer/readline"
)

const replHelp = `Enter operands, operators and names separated by spaces.
Commands:
  :clear             clear the stack and variables
  :clearvars         clear the variables only
  :set NAME VALUE    bind a variable
  :program           show the program
  :load TOKENS...    replace the program
  :symbols           list operators and constants
  :help              show this text
  :quit              leave`

func doRepl() {
	client, err := createClient()
	if err != nil {
		log.Printf("Failed to connect to server: %v", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()
	sessionID, err := client.CreateSession(ctx)
	if err != nil {
		log.Printf("Failed to create session: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.CloseSession(ctx, sessionID); err != nil {
			log.Printf("Failed to close session: %v", err)
		}
	}()

	rl, err := readline.New("calc> ")
	if err != nil {
		log.Printf("Failed to start line editor: %v", err)
		return
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), replHelp)

	r := &repl{client: client, sessionID: sessionID, out: rl.Stdout()}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}

		if !r.handle(ctx, line) {
			return
		}
	}
}

type repl struct {
	client    *calculator.Client
	sessionID string
	out       io.Writer
}

// handle runs one input line and reports whether the loop should continue.
func (r *repl) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	var result calculator.Result
	var err error

	switch fields[0] {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprintln(r.out, replHelp)
		return true
	case ":clear":
		result, err = r.client.Clear(ctx, r.sessionID, true, true)
	case ":clearvars":
		result, err = r.client.Clear(ctx, r.sessionID, false, true)
	case ":set":
		if len(fields) != 3 {
			fmt.Fprintln(r.out, "usage: :set NAME VALUE")
			return true
		}
		v, perr := strconv.ParseFloat(fields[2], 64)
		if perr != nil {
			fmt.Fprintf(r.out, "invalid value %q\n", fields[2])
			return true
		}
		result, err = r.client.SetVariable(ctx, r.sessionID, fields[1], v)
	case ":program":
		result, err = r.client.Program(ctx, r.sessionID)
		if err == nil {
			fmt.Fprintln(r.out, strings.Join(result.Program, " "))
			return true
		}
	case ":load":
		result, err = r.client.SetProgram(ctx, r.sessionID, fields[1:])
	case ":symbols":
		operators, constants, serr := r.client.Symbols(ctx)
		if serr != nil {
			fmt.Fprintf(r.out, "error: %v\n", serr)
			return true
		}
		fmt.Fprintf(r.out, "operators: %s\nconstants: %s\n", strings.Join(operators, " "), strings.Join(constants, " "))
		return true
	default:
		for _, tok := range fields {
			if result, err = r.client.Push(ctx, r.sessionID, tok); err != nil {
				break
			}
		}
	}

	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return true
	}

	fmt.Fprintf(r.out, "%s = %s\n", result.History, formatValue(result))
	return true
}
