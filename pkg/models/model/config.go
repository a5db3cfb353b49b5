package model

import "strings"

// Config is an On/Off switch read from a flag.
type Config bool

const (
	On  Config = true
	Off Config = false
)

// NewConfig reads s case-insensitively. Anything it does not know is Off.
func NewConfig(s string) Config {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "yes":
		return On
	}
	return Off
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}
