package main

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const settingsFile = "dots-and-boxes/client.json"

// Settings are the defaults kept between runs. Flags set on the command
// line win over them.
type Settings struct {
	Players []string `json:"players"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Mobile  bool     `json:"mobile"`
}

func LoadSettings() (s Settings, found bool, err error) {
	path, err := xdg.SearchConfigFile(settingsFile)
	if err != nil {
		return s, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, false, err
	}
	if err = sonic.Unmarshal(data, &s); err != nil {
		return s, false, errors.Wrapf(err, "read %s", path)
	}
	return s, true, nil
}

func (s Settings) Save() (string, error) {
	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		return "", err
	}

	data, err := sonic.ConfigStd.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}
