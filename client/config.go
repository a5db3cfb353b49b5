package main

import (
	"flag"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ModeConf    = flag.String("Mode", "play", "play or soak")
	PlayersConf = flag.String("Players", "Alice,Bob", "comma separated player names")
	WidthConf   = flag.Int("Width", 4, "board width in boxes")
	HeightConf  = flag.Int("Height", 4, "board height in boxes")
	MobileConf  = flag.String("Mobile", "On", "draw the compact board")
	GamesConf   = flag.Int("Games", 200, "games per board size in soak mode")
	SeedConf    = flag.Int64("Seed", 0, "soak seed, 0 for a random one")
	PprofConf   = flag.String("Pprof", "Off", "serve pprof on a random local port")
	SaveConf    = flag.String("Save", "Off", "keep players, size and mobile as defaults")

	Players []string
	Mobile  model.Config
	Pprof   model.Config
)

const Prefix = "!"

func initConfig() {
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	s, found, err := LoadSettings()
	if err != nil {
		logx.Error(err)
	}
	if found {
		applySettings(s, set)
	}

	Mobile = model.NewConfig(*MobileConf)
	Pprof = model.NewConfig(*PprofConf)
	Players = splitPlayers(*PlayersConf)

	if model.NewConfig(*SaveConf) {
		path, err := Settings{Players: Players, Width: *WidthConf, Height: *HeightConf, Mobile: bool(Mobile)}.Save()
		if err != nil {
			logx.Error(err)
			return
		}
		logx.Infof("settings saved to %s", path)
	}
}

// applySettings fills the flags the command line left alone.
func applySettings(s Settings, set map[string]bool) {
	if !set["Players"] && len(s.Players) > 0 {
		*PlayersConf = strings.Join(s.Players, ",")
	}
	if !set["Width"] && s.Width > 0 {
		*WidthConf = s.Width
	}
	if !set["Height"] && s.Height > 0 {
		*HeightConf = s.Height
	}
	if !set["Mobile"] {
		*MobileConf = model.Config(s.Mobile).String()
	}
}

func splitPlayers(s string) (players []string) {
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	return
}
