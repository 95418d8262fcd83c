package main

// Output formats for generated pairs.
const (
	outputText     = "text"
	outputJSON     = "json"
	outputCSV      = "csv"
	outputMarkdown = "markdown"
)

// Valid output formats.
var validOutputs = []string{outputText, outputJSON, outputCSV, outputMarkdown}

// parseErrorHint is shown whenever a roster file cannot be decoded.
const parseErrorHint = "Could not read the roster file; please check the file format."
