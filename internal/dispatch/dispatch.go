// Package dispatch implements a prefixed message-command layer on top of a
// Discord session: a command registry, named argument resolvers, and a
// per-invocation Context carrying parse state and reply/edit helpers.
package dispatch

import (
	"context"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/domain"
	"cmdbot/internal/ports/output"
)

// RunFunc executes a command against its invocation context.
type RunFunc func(ctx context.Context, c *Context) error

// Command is a registered message command.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Usage is a translation key rendered by the help command.
	Usage     string
	GuildOnly bool
	OwnerOnly bool
	Run       RunFunc
}

// Options configures dispatcher behavior. Both callbacks receive the
// invocation context of the message being handled.
type Options struct {
	// GetPrefix returns the command prefix active for this invocation.
	GetPrefix func(ctx context.Context, c *Context) (string, error)
	// GetLanguage returns the locale code active for this invocation.
	GetLanguage func(ctx context.Context, c *Context) (string, error)
	OwnerID     string
}

// Dispatcher routes incoming messages to registered commands. It owns the
// command registry, the resolver registry, and the language handler; each
// dispatched message gets its own Context, never shared across invocations.
type Dispatcher struct {
	opts      Options
	commands  map[string]*Command
	aliases   map[string]string
	resolvers map[string]ResolverFunc
	languages output.Languages
}

// New creates a Dispatcher with the built-in resolvers registered.
// languages may be nil, in which case translation operations fail with
// domain.ErrNoLanguageHandler.
func New(opts Options, languages output.Languages) *Dispatcher {
	d := &Dispatcher{
		opts:      opts,
		commands:  make(map[string]*Command),
		aliases:   make(map[string]string),
		resolvers: make(map[string]ResolverFunc),
		languages: languages,
	}
	registerBuiltinResolvers(d)
	return d
}

// Register adds a command under its name and aliases. Later registrations
// shadow earlier ones.
func (d *Dispatcher) Register(cmd *Command) {
	name := strings.ToLower(cmd.Name)
	d.commands[name] = cmd
	for _, alias := range cmd.Aliases {
		d.aliases[strings.ToLower(alias)] = name
	}
}

// RegisterResolver installs a named resolver, replacing any existing one.
func (d *Dispatcher) RegisterResolver(name string, fn ResolverFunc) {
	d.resolvers[strings.ToLower(name)] = fn
}

// Command returns the command registered under name (or an alias of it).
func (d *Dispatcher) Command(name string) *Command {
	name = strings.ToLower(name)
	if target, ok := d.aliases[name]; ok {
		name = target
	}
	return d.commands[name]
}

// Commands returns all registered commands sorted by name.
func (d *Dispatcher) Commands() []*Command {
	out := make([]*Command, 0, len(d.commands))
	for _, cmd := range d.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch handles one incoming message. It returns domain.ErrUnknownCommand
// when the message carries the prefix but no registered command matches, and
// nil when the message is not addressed to the bot at all.
func (d *Dispatcher) Dispatch(ctx context.Context, s Session, m *discordgo.MessageCreate) error {
	if m.Author == nil || m.Author.Bot {
		return nil
	}

	c := newContext(d, s, m)

	prefix := "!"
	if d.opts.GetPrefix != nil {
		p, err := d.opts.GetPrefix(ctx, c)
		if err != nil {
			return err
		}
		prefix = p
	}

	content, ok := stripPrefix(m.Content, prefix, s.BotUser())
	if !ok {
		return nil
	}

	name, rest := splitCommand(content)
	if name == "" {
		return nil
	}
	cmd := d.Command(name)
	if cmd == nil {
		return domain.ErrUnknownCommand
	}
	if cmd.GuildOnly && m.GuildID == "" {
		return domain.ErrGuildOnly
	}
	if cmd.OwnerOnly && m.Author.ID != d.opts.OwnerID {
		return domain.ErrOwnerOnly
	}

	c.Command = cmd
	c.Params, c.Flags = Tokenize(rest)
	return cmd.Run(ctx, c)
}

// stripPrefix removes the command prefix, or a leading bot mention, from
// content. The second return reports whether the message was addressed to
// the bot.
func stripPrefix(content, prefix string, bot *discordgo.User) (string, bool) {
	if prefix != "" && strings.HasPrefix(content, prefix) {
		return strings.TrimLeft(content[len(prefix):], " "), true
	}
	if bot != nil {
		for _, mention := range []string{"<@" + bot.ID + ">", "<@!" + bot.ID + ">"} {
			if strings.HasPrefix(content, mention) {
				return strings.TrimLeft(content[len(mention):], " "), true
			}
		}
	}
	return "", false
}

func splitCommand(content string) (name, rest string) {
	name, rest, _ = strings.Cut(content, " ")
	return strings.ToLower(name), strings.TrimLeft(rest, " ")
}
