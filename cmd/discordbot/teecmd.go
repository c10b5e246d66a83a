/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/teetime"
)

type TeeSubCommand string

const (
	TeeHelpCmd     TeeSubCommand = "help"
	TeeScheduleCmd TeeSubCommand = "schedule"
	TeeSunCmd      TeeSubCommand = "sun"
)

const codeFence = "```"

//go:embed help.md
var helpText string

func teeCommand() *discordgo.ApplicationCommand {
	broadcast := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
	}
	choices := func(vals ...string) []*discordgo.ApplicationCommandOptionChoice {
		out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(vals))
		for _, v := range vals {
			out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v,
				Value: v})
		}
		return out
	}
	minZero := 0.0

	return &discordgo.ApplicationCommand{
		Name:        string(TeeCmd),
		Description: "Tee sheet commands; try /tee help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TeeHelpCmd),
				Description: "Show usage for tee",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TeeScheduleCmd),
				Description: "Compute the start list of a round",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "men",
						Description: "Number of men", Required: true, MinValue: &minZero},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "women",
						Description: "Number of women", MinValue: &minZero},
					{Type: discordgo.ApplicationCommandOptionInteger, Name: "flightsize",
						Description: "Players per flight (default 3)",
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "3", Value: 3}, {Name: "4", Value: 4}}},
					{Type: discordgo.ApplicationCommandOptionString, Name: "layout",
						Description: "Single or double tee (default single)",
						Choices:     choices("single", "double")},
					{Type: discordgo.ApplicationCommandOptionString, Name: "format",
						Description: "Holes in a double tee competition (default 36)",
						Choices:     choices("36", "54")},
					{Type: discordgo.ApplicationCommandOptionString, Name: "round",
						Description: "Round (default 1)", Choices: choices("1", "2")},
					{Type: discordgo.ApplicationCommandOptionString, Name: "symmetry",
						Description: "Single tee order (default symmetric)",
						Choices:     choices("symmetric", "asymmetric")},
					{Type: discordgo.ApplicationCommandOptionString, Name: "start",
						Description: "First start time HH:MM (default 08:00)"},
					{Type: discordgo.ApplicationCommandOptionString, Name: "gap",
						Description: "Interval between starts HH:MM (default 00:10)"},
					broadcast,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TeeSunCmd),
				Description: "Show sunrise and sunset for a province",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "area",
						Description: "Province code, e.g. RM"},
					{Type: discordgo.ApplicationCommandOptionString, Name: "date",
						Description: "Date (default today)"},
					broadcast,
				},
			},
		},
	}
}

func (b *bot) teeCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := b.teeHelpCmdHandler
	if len(data.Options) > 0 {
		if h, ok := b.teeSubCmdHdlrs[TeeSubCommand(data.Options[0].Name)]; ok {
			hdlr = h
		}
	}
	return hdlr(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subOptions returns the options of the invoked sub command.
func subOptions(inter *discordgo.Interaction) []*discordgo.ApplicationCommandInteractionDataOption {
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return nil
	}
	return data.Options[0].Options
}

func (b *bot) teeHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

// settingsFromOptions maps the slash command options onto Settings.
func settingsFromOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) (teetime.Settings, bool) {
	var s teetime.Settings
	broadcast := false
	for _, opt := range opts {
		switch opt.Name {
		case "men":
			s.MenCount = teetime.Int(int(opt.IntValue()))
		case "women":
			s.WomenCount = teetime.Int(int(opt.IntValue()))
		case "flightsize":
			s.FlightSize = teetime.Int(int(opt.IntValue()))
		case "layout":
			s.Layout = opt.StringValue()
		case "format":
			s.Format = opt.StringValue()
		case "round":
			s.Round = opt.StringValue()
		case "symmetry":
			s.Symmetry = opt.StringValue()
		case "start":
			s.StartTime = opt.StringValue()
		case "gap":
			s.Gap = opt.StringValue()
		case "broadcast":
			broadcast = opt.BoolValue()
		}
	}
	return s, broadcast
}

func (b *bot) teeScheduleCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	settings, broadcast := settingsFromOptions(subOptions(inter))

	cfg, err := teetime.Resolve(settings)
	if err == nil {
		var s *teetime.Schedule
		s, err = teetime.Compute(cfg, teetime.Roster{})
		if err == nil {
			header := fmt.Sprintf("**Round %v**: %d men, %d women, %v tee\n",
				cfg.Round, cfg.MenCount, cfg.WomenCount, cfg.Layout)
			resp.Data.Content = header + codeBlock(teetime.BuildScheduleOutput(s),
				internal.DiscordMaxResponse-len(header))
			if broadcast {
				resp.Data.Flags = 0
			}
			return resp
		}
	}

	var cfgErr *teetime.ConfigError
	if errors.As(err, &cfgErr) {
		resp.Data.Content = fmt.Sprintf("Please check `%v`: %v", cfgErr.Field,
			cfgErr.Reason)
	} else {
		resp.Data.Content = fmt.Sprintf("Error computing schedule: %v", err)
	}
	b.logger.Info("discordbot.schedule: rejected", zap.Error(err))
	return resp
}

func (b *bot) teeSunCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	area, date, broadcast := b.defaultArea, "", false
	for _, opt := range subOptions(inter) {
		switch opt.Name {
		case "area":
			area = opt.StringValue()
		case "date":
			date = opt.StringValue()
		case "broadcast":
			broadcast = opt.BoolValue()
		}
	}

	d, err := internal.ParseDateOr(date, b.now())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Unrecognized date %q", date)
		return resp
	}
	st := b.sun.LookupOrDefault(ctx, area, d)
	resp.Data.Content = fmt.Sprintf("**%v** %v\nSunrise %v, sunset %v",
		st.Area, st.Date, st.Sunrise, st.Sunset)
	if st.Placeholder {
		resp.Data.Content += " (estimated)"
	}
	if broadcast {
		resp.Data.Flags = 0
	}
	return resp
}

// codeBlock fences s so it renders monospaced, cutting it so the whole block
// fits in limit bytes.
func codeBlock(s string, limit int) string {
	overhead := len(codeFence)*2 + 1
	return codeFence + "\n" + internal.Truncate(s, limit-overhead, "...\n") +
		codeFence
}

func truncateContent(s string) string {
	return internal.Truncate(s, internal.DiscordMaxResponse, "...")
}
