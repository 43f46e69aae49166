package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
)

// exit statuses, following sysexits
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
)

type (
	CommandFunc func(args []string) int

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var (
	commands map[string]CommandInfo

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	logger           = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

var configFlag = FlagInfo{
	Name:        "-c",
	Description: "path of a YAML session config",
}

func init() {
	commands = map[string]CommandInfo{
		"run": {
			Description: "Resolves and executes the given program documents in one session",
			Function:    Run,
			Flags:       []FlagInfo{configFlag},
		},
		"check": {
			Description: "Resolves the given program documents and reports diagnostics",
			Function:    Check,
			Flags:       []FlagInfo{configFlag},
		},
		"print": {
			Description: "Prints the syntax tree of a program document",
			Function:    Print,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Help(args []string) int {
	if len(args) < 1 {
		// show the whole help catalog
		printResult := "\n\033[1;35mSupported Commands:\033[0m\n\n"

		for _, name := range commandNames() {
			cmd := commands[name]
			printResult += fmt.Sprintf("  \033[1;36m%v\033[0m\n", name)
			printResult += fmt.Sprintf("    \033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

			if len(cmd.Flags) > 0 {
				printResult += "    \033[1;37mFlags:\033[0m\n"
				for _, flag := range cmd.Flags {
					printResult += fmt.Sprintf("      \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
				}
			}
			printResult += "\n"
		}

		fmt.Fprintln(stdout, printResult)
		return ExitOK
	}

	// print the help of the specified command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "ERROR: unknown command %v, check help for manual.\n", cmdName)
		return ExitUsage
	}

	printResult := fmt.Sprintf("\n\033[1;35mCommand:\033[0m \033[1;36m%v\033[0m\n", cmdName)
	printResult += fmt.Sprintf("\033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

	if len(cmd.Flags) > 0 {
		printResult += fmt.Sprintln("\033[1;37mFlags:\033[0m")
		for _, flag := range cmd.Flags {
			printResult += fmt.Sprintf("  \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
		}
	} else {
		printResult += "\033[0;37m(No flags available)\033[0m\n"
	}

	fmt.Fprintln(stdout, printResult)
	return ExitOK
}

// Dispatch runs the named command and returns its exit status.
func Dispatch(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "ERROR: at least provide command name to kick off the cli")
		return ExitUsage
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "ERROR: unknown command %v, check help for manual.\n", name)
		return ExitUsage
	}

	logger.Debug("command started", "command", name)
	status := cmd.Function(args[1:])
	logger.Debug("command finished", "command", name, "status", status)
	return status
}

func Execute() {
	os.Exit(Dispatch(os.Args[1:]))
}
