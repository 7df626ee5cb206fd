package dispatch

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"cmdbot/internal/domain"
	"cmdbot/internal/ports/output"
)

// Session is the subset of the Discord session the dispatcher needs. It is
// satisfied by the adapter wrapping *discordgo.Session and by test fakes.
type Session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	// BotUser returns the authenticated bot user, or nil before login.
	BotUser() *discordgo.User
}

// Context carries the state of one command invocation. The dispatcher creates
// one per incoming message and discards it after the command returns; it must
// not be reused across messages or accessed from other goroutines.
type Context struct {
	Session Session
	Command *Command

	// Identity of the triggering message; all references, never copies.
	Message *discordgo.Message
	Author  *discordgo.User
	Member  *discordgo.Member

	// Parse state. Params holds positional arguments, Flags the --key=value
	// switches; cursor tracks how many params have been consumed.
	Params []string
	Flags  map[string]string
	cursor int

	dispatcher *Dispatcher

	// Response tracking, in send order keyed by message ID.
	responses    map[string]*discordgo.Message
	responseIDs  []string
	lastResponse *discordgo.Message
	shouldEdit   bool
}

func newContext(d *Dispatcher, s Session, m *discordgo.MessageCreate) *Context {
	return &Context{
		Session:    s,
		Message:    m.Message,
		Author:     m.Author,
		Member:     m.Member,
		Flags:      map[string]string{},
		dispatcher: d,
		responses:  map[string]*discordgo.Message{},
	}
}

// GuildID returns the guild of the triggering message, empty in DMs.
func (c *Context) GuildID() string { return c.Message.GuildID }

// ChannelID returns the channel of the triggering message.
func (c *Context) ChannelID() string { return c.Message.ChannelID }

// Reply sends content to the invocation channel. Once a reply without
// attachments has been sent, subsequent calls edit that message in place
// instead of sending a new one; a reply carrying attachments switches back
// to sending. The returned message is the one sent or edited.
func (c *Context) Reply(ctx context.Context, content string) (*discordgo.Message, error) {
	return c.reply(ctx, &discordgo.MessageSend{Content: content})
}

// ReplyEmbed is Reply for a rich-embed payload.
func (c *Context) ReplyEmbed(ctx context.Context, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return c.reply(ctx, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{embed}})
}

func (c *Context) reply(ctx context.Context, data *discordgo.MessageSend) (*discordgo.Message, error) {
	if c.shouldEdit && c.lastResponse != nil && len(c.lastResponse.Attachments) == 0 {
		return c.edit(ctx, data.Content, data.Embeds)
	}
	msg, err := c.Session.ChannelMessageSendComplex(c.ChannelID(), data, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	c.record(msg)
	return msg, nil
}

// Edit rewrites the most recent response with content. It fails with
// domain.ErrNoPriorResponse when nothing has been replied yet.
func (c *Context) Edit(ctx context.Context, content string) (*discordgo.Message, error) {
	return c.edit(ctx, content, nil)
}

// EditEmbed is Edit for a rich-embed payload.
func (c *Context) EditEmbed(ctx context.Context, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return c.edit(ctx, "", []*discordgo.MessageEmbed{embed})
}

func (c *Context) edit(ctx context.Context, content string, embeds []*discordgo.MessageEmbed) (*discordgo.Message, error) {
	if c.lastResponse == nil {
		return nil, domain.ErrNoPriorResponse
	}
	edit := discordgo.NewMessageEdit(c.lastResponse.ChannelID, c.lastResponse.ID)
	if len(embeds) > 0 {
		edit.SetEmbeds(embeds)
	} else {
		edit.SetContent(content)
	}
	msg, err := c.Session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	c.record(msg)
	return msg, nil
}

// record tracks msg as the latest response and re-evaluates edit mode:
// replies edit in place exactly while the latest response has no attachments.
func (c *Context) record(msg *discordgo.Message) {
	if _, seen := c.responses[msg.ID]; !seen {
		c.responseIDs = append(c.responseIDs, msg.ID)
	}
	c.responses[msg.ID] = msg
	c.lastResponse = msg
	c.shouldEdit = len(msg.Attachments) == 0
}

// Responses returns every message produced during this invocation, oldest
// first. Edited messages appear once, at their original position.
func (c *Context) Responses() []*discordgo.Message {
	out := make([]*discordgo.Message, 0, len(c.responseIDs))
	for _, id := range c.responseIDs {
		out = append(out, c.responses[id])
	}
	return out
}

// LastResponse returns the most recent outbound message, or nil.
func (c *Context) LastResponse() *discordgo.Message { return c.lastResponse }

// NextParam consumes and returns the next positional parameter.
func (c *Context) NextParam() (string, bool) {
	if c.cursor >= len(c.Params) {
		return "", false
	}
	p := c.Params[c.cursor]
	c.cursor++
	return p, true
}

// RestParams returns the unconsumed positional parameters without advancing.
func (c *Context) RestParams() []string {
	if c.cursor >= len(c.Params) {
		return nil
	}
	return c.Params[c.cursor:]
}

// Flag returns the value of a named switch and whether it was present.
func (c *Context) Flag(name string) (string, bool) {
	v, ok := c.Flags[name]
	return v, ok
}

// Resolve converts value using the resolver registered under typeName.
// An unregistered name fails with domain.ErrUnknownResolverType; a resolver
// that matches nothing returns (nil, nil).
func (c *Context) Resolve(ctx context.Context, value, typeName string) (any, error) {
	fn, ok := c.dispatcher.resolvers[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownResolverType, typeName)
	}
	return fn(ctx, c, value)
}

// ResolveNext consumes the next positional parameter and resolves it.
func (c *Context) ResolveNext(ctx context.Context, typeName string) (any, error) {
	p, ok := c.NextParam()
	if !ok {
		return nil, nil
	}
	return c.Resolve(ctx, p, typeName)
}

// Language returns the Language active for this invocation, determined by the
// dispatcher's GetLanguage callback. It returns nil when no language handler
// is installed or the resolved code matches no registered language.
func (c *Context) Language(ctx context.Context) (output.Language, error) {
	handler := c.dispatcher.languages
	if handler == nil {
		return nil, nil
	}
	if c.dispatcher.opts.GetLanguage == nil {
		return handler.Default(), nil
	}
	code, err := c.dispatcher.opts.GetLanguage(ctx, c)
	if err != nil {
		return nil, err
	}
	return handler.Get(code), nil
}

// Translate renders the message registered under path in the invocation's
// active language. It fails with domain.ErrNoLanguageHandler when no
// language resolves.
func (c *Context) Translate(ctx context.Context, path string, vars map[string]any) (string, error) {
	lang, err := c.Language(ctx)
	if err != nil {
		return "", err
	}
	if lang == nil {
		return "", domain.ErrNoLanguageHandler
	}
	return lang.Translate(path, vars), nil
}

// TranslateTemplate builds a translation path by interleaving literal
// segments with stringified values (nil renders empty) and translates it
// with no template variables. TranslateTemplate(ctx, []string{"hello ", ""},
// "world") is equivalent to Translate(ctx, "hello world", nil).
func (c *Context) TranslateTemplate(ctx context.Context, literals []string, values ...any) (string, error) {
	return c.Translate(ctx, joinTemplate(literals, values), nil)
}

// TranslateWithVars returns a template function like TranslateTemplate with
// the translation variables bound up front, for reuse across several paths.
func (c *Context) TranslateWithVars(vars map[string]any) func(ctx context.Context, literals []string, values ...any) (string, error) {
	return func(ctx context.Context, literals []string, values ...any) (string, error) {
		return c.Translate(ctx, joinTemplate(literals, values), vars)
	}
}

func joinTemplate(literals []string, values []any) string {
	var path string
	for i, lit := range literals {
		path += lit
		if i < len(values) {
			if values[i] == nil {
				continue
			}
			path += fmt.Sprint(values[i])
		}
	}
	return path
}
