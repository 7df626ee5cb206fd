package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/domain"
)

func staticPrefix(prefix string) Options {
	return Options{
		GetPrefix: func(context.Context, *Context) (string, error) { return prefix, nil },
	}
}

func TestDispatchRunsCommand(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	var got *Context
	d.Register(&Command{
		Name: "echo",
		Run: func(_ context.Context, c *Context) error {
			got = c
			return nil
		},
	})

	m := incoming(`!echo hello "big world" --upper`)
	if err := d.Dispatch(context.Background(), newFakeSession(), m); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got == nil {
		t.Fatal("command did not run")
	}
	if got.Command.Name != "echo" {
		t.Errorf("command: got %q", got.Command.Name)
	}
	if len(got.Params) != 2 || got.Params[0] != "hello" || got.Params[1] != "big world" {
		t.Errorf("params: got %#v", got.Params)
	}
	if v, ok := got.Flag("upper"); !ok || v != "true" {
		t.Errorf("flags: got %#v", got.Flags)
	}
	if got.Author.ID != "U1" || got.ChannelID() != "C1" || got.GuildID() != "G1" {
		t.Error("identity fields not carried over")
	}
}

func TestDispatchByAlias(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	ran := false
	d.Register(&Command{
		Name:    "echo",
		Aliases: []string{"say"},
		Run:     func(context.Context, *Context) error { ran = true; return nil },
	})

	if err := d.Dispatch(context.Background(), newFakeSession(), incoming("!SAY hi")); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !ran {
		t.Error("alias did not run the command")
	}
}

func TestDispatchIgnoresUnaddressedMessages(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	d.Register(&Command{
		Name: "echo",
		Run: func(context.Context, *Context) error {
			t.Error("command must not run")
			return nil
		},
	})

	for _, content := range []string{"just chatting", "echo without prefix", ""} {
		if err := d.Dispatch(context.Background(), newFakeSession(), incoming(content)); err != nil {
			t.Errorf("Dispatch(%q): %v", content, err)
		}
	}
}

func TestDispatchIgnoresBots(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	d.Register(&Command{
		Name: "echo",
		Run: func(context.Context, *Context) error {
			t.Error("bot message must not dispatch")
			return nil
		},
	})
	m := incoming("!echo hi")
	m.Author.Bot = true
	if err := d.Dispatch(context.Background(), newFakeSession(), m); err != nil {
		t.Errorf("Dispatch: %v", err)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	err := d.Dispatch(context.Background(), newFakeSession(), incoming("!nope"))
	if !errors.Is(err, domain.ErrUnknownCommand) {
		t.Errorf("want ErrUnknownCommand, got %v", err)
	}
}

func TestDispatchGuildOnly(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	d.Register(&Command{
		Name:      "prefix",
		GuildOnly: true,
		Run:       func(context.Context, *Context) error { return nil },
	})

	dm := &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "IN2", ChannelID: "D1", Content: "!prefix ?",
		Author: &discordgo.User{ID: "U1"},
	}}
	err := d.Dispatch(context.Background(), newFakeSession(), dm)
	if !errors.Is(err, domain.ErrGuildOnly) {
		t.Errorf("want ErrGuildOnly, got %v", err)
	}
}

func TestDispatchOwnerOnly(t *testing.T) {
	opts := staticPrefix("!")
	opts.OwnerID = "U1"
	d := New(opts, nil)
	ran := false
	d.Register(&Command{
		Name:      "reset",
		OwnerOnly: true,
		Run:       func(context.Context, *Context) error { ran = true; return nil },
	})

	if err := d.Dispatch(context.Background(), newFakeSession(), incoming("!reset")); err != nil {
		t.Fatalf("owner dispatch: %v", err)
	}
	if !ran {
		t.Error("owner should be allowed")
	}

	other := incoming("!reset")
	other.Author.ID = "U2"
	err := d.Dispatch(context.Background(), newFakeSession(), other)
	if !errors.Is(err, domain.ErrOwnerOnly) {
		t.Errorf("want ErrOwnerOnly, got %v", err)
	}
}

func TestDispatchByMention(t *testing.T) {
	d := New(staticPrefix("!"), nil)
	ran := false
	d.Register(&Command{
		Name: "ping",
		Run:  func(context.Context, *Context) error { ran = true; return nil },
	})

	s := newFakeSession()
	bot := s.BotUser()
	for _, content := range []string{"<@" + bot.ID + "> ping", "<@!" + bot.ID + "> ping"} {
		ran = false
		if err := d.Dispatch(context.Background(), s, incoming(content)); err != nil {
			t.Fatalf("Dispatch(%q): %v", content, err)
		}
		if !ran {
			t.Errorf("mention form %q did not dispatch", content)
		}
	}
}

func TestCommandsSorted(t *testing.T) {
	d := New(Options{}, nil)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		d.Register(&Command{Name: name, Run: func(context.Context, *Context) error { return nil }})
	}
	got := d.Commands()
	want := []string{"alpha", "mid", "zeta"}
	for i, cmd := range got {
		if cmd.Name != want[i] {
			t.Fatalf("Commands(): got order %v", got)
		}
	}
}
