// Package cli provides the interactive ledger command-line client.
//
// The REPL reads one command per line and dispatches to App:
//
//	help                                  show available commands
//	list [location=] [link=] [notes=] [from=] [to=]
//	add                                   prompt for a new ledger action
//	edit <id>                             prompt for new values, Enter keeps the old one
//	remove <id>                           delete a ledger action
//	import <file.json>                    add a JSON array of ledger actions
//	assets                                list known assets
//	messages                              show pending warnings and errors
//	exit | quit                           leave the program
//
// from= and to= accept unix seconds, YYYY-MM-DD or RFC 3339 timestamps.
// The prompt is printed only when stdin is a terminal.
package cli
