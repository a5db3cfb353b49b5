package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const channel = "terminal"

// Play runs a hot-seat game. Each line is "name: text", or bare text from
// the player whose turn it is.
func Play(ctx context.Context, in io.Reader, out io.Writer) error {
	if len(Players) < 2 {
		return errors.New("play needs at least two players")
	}

	members := make([]session.Member, len(Players))
	for i, p := range Players {
		members[i] = session.Member{ID: strconv.Itoa(i + 1), Name: p, Mobile: bool(Mobile)}
	}

	r := session.NewRegistry(
		session.WithPrefix(Prefix),
		session.WithDefaultSize(*WidthConf, *HeightConf),
	)
	t, err := r.Start(ctx, channel, members[0], members[1:], *WidthConf, *HeightConf)
	if err != nil {
		if text, ok := session.Explain(err); ok {
			return errors.New(text)
		}
		return err
	}

	printView(out, t.View())
	scanner := bufio.NewScanner(in)
	for !t.Ended() && scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		author, text := splitLine(members, t.CurrentPlayer(), scanner.Text())
		reply, err := r.HandleMessage(ctx, channel, author, text, nil)
		if err != nil {
			return err
		}

		switch {
		case reply == nil:
			fmt.Fprintln(out, aurora.Faint("Moves look like a1-b1."))
		case reply.View != nil:
			printView(out, *reply.View)
		default:
			fmt.Fprintln(out, aurora.Red(reply.Text))
		}
	}
	return scanner.Err()
}

func splitLine(members []session.Member, current, line string) (session.Member, string) {
	author := members[0]
	for _, m := range members {
		if m.ID == current {
			author = m
		}
	}

	name, text, ok := strings.Cut(line, ":")
	if !ok {
		return author, strings.TrimSpace(line)
	}
	for _, m := range members {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, strings.TrimSpace(text)
		}
	}
	return author, strings.TrimSpace(line)
}

func printView(out io.Writer, v message.ViewMessage) {
	title := aurora.Bold(v.Title)
	if v.Finished {
		title = aurora.Green(title)
	}
	if v.Cancelled {
		title = aurora.Red(title)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, v.Description)
	for _, s := range v.Scores {
		fmt.Fprintf(out, "%s %s: %d\n", aurora.Cyan(s.Icon), s.Name, s.Score)
	}
	fmt.Fprintln(out, aurora.Faint(v.Footer))
}
