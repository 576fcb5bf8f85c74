package focus

import "strings"

// Direction is a remote-control navigation direction
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Valid reports whether d is one of the four known directions
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Horizontal reports whether d moves along the x axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Command is a discrete input command fed into the engine
type Command string

const (
	CommandUp       Command = "up"
	CommandDown     Command = "down"
	CommandLeft     Command = "left"
	CommandRight    Command = "right"
	CommandActivate Command = "activate"
)

// ParseCommand maps a command name (case-insensitive) to a Command
func ParseCommand(s string) (Command, bool) {
	switch c := Command(strings.ToLower(strings.TrimSpace(s))); c {
	case CommandUp, CommandDown, CommandLeft, CommandRight, CommandActivate:
		return c, true
	}
	return "", false
}

// Direction returns the movement direction of a directional command
func (c Command) Direction() (Direction, bool) {
	d := Direction(c)
	return d, d.Valid()
}
