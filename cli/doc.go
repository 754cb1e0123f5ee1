/*
Package cli holds the command implementations shared by the create_sedml,
print_sedml and sedml programs: the document actions, the exit code
contract, logging setup and configuration loading.

Programs call an action and hand the returned error to Exit, which
prints it and returns the process exit code. Usage mistakes and
documents with errors exit with ExitUsage; any other failure exits
with ExitFailure.
*/
package cli
