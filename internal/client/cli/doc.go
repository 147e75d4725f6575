// Package cli provides the interactive usuarios admin client.
//
// It wires configuration, the gRPC client and a small REPL. Commands:
//
//	help            show available commands
//	list | l        list all users
//	get <id>        show one user
//	create          prompt for id, name and age and create a user
//	update <id>     prompt for name and age and replace the user
//	delete <id>     remove a user
//	exit | quit     leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin is closed.
package cli
