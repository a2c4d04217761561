// Command importflow is the terminal front end of the import approval
// workflow. It opens the local state store, runs one workflow command
// against the in-process service, renders the result, and exits. All
// business rules live under internal/; this package is presentation only.
package main
