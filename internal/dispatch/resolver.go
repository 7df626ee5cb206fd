package dispatch

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ResolverFunc converts a raw string argument into a typed value. A resolver
// returns (nil, nil) when the input matches nothing, and an error only for
// failures talking to downstream collaborators.
type ResolverFunc func(ctx context.Context, c *Context, value string) (any, error)

var (
	userMentionRe    = regexp.MustCompile(`^<@!?(\d+)>$`)
	channelMentionRe = regexp.MustCompile(`^<#(\d+)>$`)
	roleMentionRe    = regexp.MustCompile(`^<@&(\d+)>$`)
	snowflakeRe      = regexp.MustCompile(`^\d{17,20}$`)
)

func registerBuiltinResolvers(d *Dispatcher) {
	d.RegisterResolver("string", resolveString)
	d.RegisterResolver("int", resolveInt)
	d.RegisterResolver("float", resolveFloat)
	d.RegisterResolver("bool", resolveBool)
	d.RegisterResolver("duration", resolveDuration)
	d.RegisterResolver("user", resolveUser)
	d.RegisterResolver("member", resolveMember)
	d.RegisterResolver("channel", resolveChannel)
	d.RegisterResolver("role", resolveRole)
}

func resolveString(_ context.Context, _ *Context, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	return value, nil
}

func resolveInt(_ context.Context, _ *Context, value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, nil
	}
	return n, nil
}

func resolveFloat(_ context.Context, _ *Context, value string) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, nil
	}
	return f, nil
}

func resolveBool(_ context.Context, _ *Context, value string) (any, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return nil, nil
}

func resolveDuration(_ context.Context, _ *Context, value string) (any, error) {
	dur, err := time.ParseDuration(value)
	if err != nil {
		return nil, nil
	}
	return dur, nil
}

// resolveUser accepts a mention (<@id> or <@!id>) or a raw snowflake.
func resolveUser(ctx context.Context, c *Context, value string) (any, error) {
	id := snowflakeFrom(value, userMentionRe)
	if id == "" {
		return nil, nil
	}
	user, err := c.Session.User(id, requestOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// resolveMember is resolveUser scoped to the invocation guild.
func resolveMember(ctx context.Context, c *Context, value string) (any, error) {
	if c.GuildID() == "" {
		return nil, nil
	}
	id := snowflakeFrom(value, userMentionRe)
	if id == "" {
		return nil, nil
	}
	member, err := c.Session.GuildMember(c.GuildID(), id, requestOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func resolveChannel(ctx context.Context, c *Context, value string) (any, error) {
	id := snowflakeFrom(value, channelMentionRe)
	if id == "" {
		return nil, nil
	}
	channel, err := c.Session.Channel(id, requestOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	return channel, nil
}

// resolveRole accepts a mention, a snowflake, or a case-insensitive role name.
func resolveRole(ctx context.Context, c *Context, value string) (any, error) {
	if c.GuildID() == "" {
		return nil, nil
	}
	roles, err := c.Session.GuildRoles(c.GuildID(), requestOptions(ctx)...)
	if err != nil {
		return nil, err
	}
	id := snowflakeFrom(value, roleMentionRe)
	for _, role := range roles {
		if role.ID == id || strings.EqualFold(role.Name, value) {
			return role, nil
		}
	}
	return nil, nil
}

func requestOptions(ctx context.Context) []discordgo.RequestOption {
	return []discordgo.RequestOption{discordgo.WithContext(ctx)}
}

func snowflakeFrom(value string, mention *regexp.Regexp) string {
	if m := mention.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if snowflakeRe.MatchString(value) {
		return value
	}
	return ""
}
