package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
)

var ErrSyntax = errors.New("syntax error")

// verb is a console action. Only verbDispatch maps onto a session command.
type verb int

const (
	verbDispatch verb = iota
	verbTick
	verbWait
	verbState
	verbExport
	verbHelp
	verbQuit
)

type action struct {
	verb    verb
	command stopwatch.Command
	count   int
	wait    time.Duration
	path    string
}

// parseLine turns one console line into an action. Blank lines and
// comments yield ok == false.
func parseLine(line string) (action, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return action{}, false, nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "start":
		return dispatch(stopwatch.StartCommand, args)
	case "lap", "split":
		return dispatch(stopwatch.LapCommand, args)
	case "stop":
		return dispatch(stopwatch.StopCommand, args)
	case "seconds", "tenths", "tolerance":
		n, err := intArg(name, args)
		if err != nil {
			return action{}, false, err
		}
		var cmd stopwatch.Command
		switch name {
		case "seconds":
			cmd = stopwatch.SetTargetSeconds(n)
		case "tenths":
			cmd = stopwatch.SetTargetTenths(n)
		default:
			cmd = stopwatch.SetTolerance(n)
		}
		return action{verb: verbDispatch, command: cmd}, true, nil
	case "tick":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = intArg(name, args); err != nil {
				return action{}, false, err
			}
			if n < 0 {
				return action{}, false, fmt.Errorf("%w: tick count must not be negative", ErrSyntax)
			}
		}
		return action{verb: verbTick, count: n}, true, nil
	case "wait":
		if len(args) != 1 {
			return action{}, false, fmt.Errorf("%w: wait takes a duration", ErrSyntax)
		}
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return action{}, false, fmt.Errorf("%w: bad duration %q", ErrSyntax, args[0])
		}
		return action{verb: verbWait, wait: d}, true, nil
	case "state":
		return action{verb: verbState}, true, nil
	case "export":
		a := action{verb: verbExport}
		if len(args) > 0 {
			a.path = strings.Join(args, " ")
		}
		return a, true, nil
	case "help", "?":
		return action{verb: verbHelp}, true, nil
	case "quit", "exit":
		return action{verb: verbQuit}, true, nil
	default:
		return action{}, false, fmt.Errorf("%w: unknown command %q", ErrSyntax, name)
	}
}

func dispatch(cmd stopwatch.Command, args []string) (action, bool, error) {
	if len(args) != 0 {
		return action{}, false, fmt.Errorf("%w: %s takes no arguments", ErrSyntax, cmd.Kind)
	}
	return action{verb: verbDispatch, command: cmd}, true, nil
}

func intArg(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes one integer", ErrSyntax, name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrSyntax, name, args[0])
	}
	return n, nil
}

const helpText = `commands:
  start | lap | stop
  seconds N (0-59) | tenths N (0-9) | tolerance N (0-9)
  tick [N]     deliver N ticks (manual clock only)
  wait DUR     sleep, e.g. wait 1.5s
  state | export [PATH] | help | quit`
