// Package app runs one pipeline stage inside the shared lifecycle every
// command binary needs.
//
// # Lifecycle
//
// Execute performs, in order:
//
//  1. Resolve paths and create output directories
//  2. Replace the JSON logger with one for the stage (logs/<stage>.log)
//  3. Attach a fresh trace ID to the run context
//  4. Create the output directory and take the run lock beside the output file
//  5. Run the stage
//  6. Stamp and write the run metrics
//
// A failed stage is reported once through errors.ErrorHandler, which logs
// the error with its context and prints the operator diagnostic.
//
// # Usage
//
//	func main() {
//	    configFile := flag.String("config", "", "path to config file")
//	    flag.Parse()
//	    os.Exit(app.Main(context.Background(), *configFile, nil, pipeline.Normalize()))
//	}
//
// # Error Handling
//
// Execute returns the stage error so tests can inspect it. Main converts
// it into the process exit status and never calls os.Exit itself.
// LoadConfig is exposed for command front ends that run several stages.
package app
