package stopwatch

// CommandKind names an action the session controller accepts.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdLap
	CmdStop
	CmdTick
	CmdSetTargetSeconds
	CmdSetTargetTenths
	CmdSetTolerance
)

func (k CommandKind) String() string {
	switch k {
	case CmdStart:
		return "start"
	case CmdLap:
		return "lap"
	case CmdStop:
		return "stop"
	case CmdTick:
		return "tick"
	case CmdSetTargetSeconds:
		return "set target seconds"
	case CmdSetTargetTenths:
		return "set target tenths"
	case CmdSetTolerance:
		return "set tolerance"
	default:
		return "unknown"
	}
}

// Command is a single message dispatched into a Session. Value is only read
// by the setter kinds.
type Command struct {
	Kind  CommandKind
	Value int
}

var (
	StartCommand = Command{Kind: CmdStart}
	LapCommand   = Command{Kind: CmdLap}
	StopCommand  = Command{Kind: CmdStop}
	TickCommand  = Command{Kind: CmdTick}
)

func SetTargetSeconds(n int) Command {
	return Command{Kind: CmdSetTargetSeconds, Value: n}
}

func SetTargetTenths(n int) Command {
	return Command{Kind: CmdSetTargetTenths, Value: n}
}

func SetTolerance(n int) Command {
	return Command{Kind: CmdSetTolerance, Value: n}
}
