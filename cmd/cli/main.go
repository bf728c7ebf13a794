package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"nlp-qa/internal/app"
	"nlp-qa/internal/normalize"
	"nlp-qa/internal/qa"
)

const divider = "------------------------------------------------------------"
const banner = "============================================================"

func main() {
	ctx := context.Background()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	fmt.Println(banner)
	fmt.Println("LLM Question and Answering CLI")
	fmt.Println(banner)

	if !deps.QA.Configured() {
		printRemediation(os.Stdout)
		return
	}

	fmt.Println("\nAPI key loaded successfully")
	fmt.Println("\nType 'quit' or 'exit' to close the application.")

	run(ctx, os.Stdin, os.Stdout, deps.QA)
}

// printRemediation tells the operator how to supply the missing credential.
func printRemediation(out io.Writer) {
	fmt.Fprintln(out, "\nERROR: GEMINI_API_KEY not found!")
	fmt.Fprintln(out, "Please create a .env file with:")
	fmt.Fprintln(out, "GEMINI_API_KEY=your_api_key_here")
	fmt.Fprintln(out, "\nGet your key from: https://makersuite.google.com/app/apikey")
}

// run is the interactive read-eval loop. One question in flight at a time;
// the provider call blocks until it returns. Errors are printed inline and
// the loop continues.
func run(ctx context.Context, in io.Reader, out io.Writer, svc *qa.Service) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, divider)
		fmt.Fprint(out, "Enter your question: ")
		if !scanner.Scan() {
			return
		}
		question := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "\nThank you for using the LLM Q&A CLI. Goodbye!")
			return
		}
		if question == "" {
			fmt.Fprintln(out, "Please enter a valid question.")
			continue
		}

		res := svc.Answer(ctx, question)
		printTrace(out, res.Trace)

		if !res.OK() {
			fmt.Fprintf(out, "Error: %s\n", res.Message)
			continue
		}

		fmt.Fprintln(out, banner)
		fmt.Fprintln(out, "ANSWER:")
		fmt.Fprintln(out, banner)
		fmt.Fprintln(out, res.Answer)
		fmt.Fprintln(out, banner)
	}
}

func printTrace(out io.Writer, tr normalize.Trace) {
	fmt.Fprintln(out, "--- Preprocessing Steps ---")
	fmt.Fprintf(out, "Original: %s\n", tr.Original)
	fmt.Fprintf(out, "Lowercased: %s\n", tr.Lowercased)
	fmt.Fprintf(out, "Punctuation Removed: %s\n", tr.PunctuationRemoved)
	fmt.Fprintf(out, "Tokens: %v\n", tr.Tokens)
	fmt.Fprintf(out, "Processed: %s\n", tr.Processed)
	fmt.Fprintln(out, "---------------------------")
}
