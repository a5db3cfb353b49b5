package main

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for width := 1; width <= 4; width++ {
		for height := 1; height <= 4; height++ {
			for i := 0; i < 20; i++ {
				require.NoError(t, playRandom(rng, []string{"a", "b", "c"}, width, height))
			}
		}
	}
}

func TestSplitLine(t *testing.T) {
	members := []session.Member{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}}

	m, text := splitLine(members, "2", "a1-b1")
	assert.Equal(t, "Bob", m.Name)
	assert.Equal(t, "a1-b1", text)

	m, text = splitLine(members, "2", "alice: !cancel")
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, "!cancel", text)

	m, text = splitLine(members, "1", "note: hi")
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, "note: hi", text)
}

func TestPlayCancel(t *testing.T) {
	Players = []string{"Alice", "Bob"}
	Mobile = true

	var out bytes.Buffer
	in := strings.NewReader("z9-z8\nhello\nalice: !cancel\n")
	require.NoError(t, Play(context.Background(), in, &out))

	assert.Contains(t, out.String(), "Invalid move.")
	assert.Contains(t, out.String(), "Moves look like a1-b1.")
	assert.Contains(t, out.String(), "Game cancelled by Alice. Go boo them!")
}

func TestApplySettings(t *testing.T) {
	players, width, height, mobile := *PlayersConf, *WidthConf, *HeightConf, *MobileConf
	defer func() {
		*PlayersConf, *WidthConf, *HeightConf, *MobileConf = players, width, height, mobile
	}()

	applySettings(Settings{Players: []string{"Carol", "Dave", "Erin"}, Width: 3, Height: 5, Mobile: false},
		map[string]bool{"Height": true})

	assert.Equal(t, []string{"Carol", "Dave", "Erin"}, splitPlayers(*PlayersConf))
	assert.Equal(t, 3, *WidthConf)
	assert.Equal(t, height, *HeightConf)
	assert.Equal(t, "Off", *MobileConf)
	assert.Equal(t, []string{"a", "b"}, splitPlayers(" a, ,b,"))
}
