/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/teetime"
)

type fakeSun struct{}

func (fakeSun) LookupOrDefault(ctx context.Context, area string,
	date time.Time) ephemeris.SunTimes {

	return ephemeris.SunTimes{
		Area:    area,
		Date:    date.Format("2006-01-02"),
		Sunrise: teetime.MustParseClock("05:34"),
		Sunset:  teetime.MustParseClock("20:47"),
	}
}

func newTestBot(t *testing.T) (*bot, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	b := newBot(pub, nil, fakeSun{}, "RM")
	b.now = func() time.Time {
		return time.Date(2026, time.June, 13, 9, 0, 0, 0, time.Local)
	}
	return b, priv
}

func subCommand(name string,
	opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {

	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(TeeCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    name,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(v),
	}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: v,
	}
}

func boolOpt(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: v,
	}
}

func TestTeeScheduleCmdHandler(t *testing.T) {
	b, _ := newTestBot(t)
	ctx := context.Background()

	resp := b.teeCmdHandler(ctx, subCommand(string(TeeScheduleCmd),
		intOpt("men", 12)))
	if resp == nil || resp.Data == nil {
		t.Fatal("Expected non-nil response data")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("Expected response type %v, got %v",
			discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("Expected an ephemeral response, got flags %v", resp.Data.Flags)
	}
	content := resp.Data.Content
	if !strings.Contains(content, "**Round 1**: 12 men, 0 women, single tee") {
		t.Errorf("missing header in %q", content)
	}
	if !strings.Contains(content, "```\n") ||
		!strings.Contains(content, "Crossing time: 10:45") {
		t.Errorf("unexpected content %q", content)
	}

	resp = b.teeCmdHandler(ctx, subCommand(string(TeeScheduleCmd),
		intOpt("men", 12), boolOpt("broadcast", true)))
	if resp.Data.Flags != 0 {
		t.Errorf("Expected a public response, got flags %v", resp.Data.Flags)
	}
}

func TestTeeScheduleCmdHandlerErrors(t *testing.T) {
	b, _ := newTestBot(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		opts  []*discordgo.ApplicationCommandInteractionDataOption
		field string
	}{
		{"bad start", []*discordgo.ApplicationCommandInteractionDataOption{
			intOpt("men", 9), strOpt("start", "25:99")}, "start_time"},
		{"bad flight size", []*discordgo.ApplicationCommandInteractionDataOption{
			intOpt("men", 9), intOpt("flightsize", 5)}, "flight_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := b.teeCmdHandler(ctx, subCommand(string(TeeScheduleCmd),
				tc.opts...))
			if !strings.Contains(resp.Data.Content, "`"+tc.field+"`") {
				t.Errorf("content %q does not name %v", resp.Data.Content,
					tc.field)
			}
		})
	}
}

func TestTeeScheduleCmdHandlerTruncates(t *testing.T) {
	b, _ := newTestBot(t)

	resp := b.teeCmdHandler(context.Background(),
		subCommand(string(TeeScheduleCmd), intOpt("men", 200),
			intOpt("women", 100)))
	content := resp.Data.Content
	if len(content) > internal.DiscordMaxResponse {
		t.Errorf("content is %v bytes; limit is %v", len(content),
			internal.DiscordMaxResponse)
	}
	if !strings.HasSuffix(content, "```") {
		t.Errorf("code block not closed: %q", content[len(content)-20:])
	}
}

func TestTeeHelpAndSun(t *testing.T) {
	b, _ := newTestBot(t)
	ctx := context.Background()

	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: string(TeeCmd)},
	}
	resp := b.teeCmdHandler(ctx, inter)
	if !strings.Contains(resp.Data.Content, "/tee schedule") {
		t.Errorf("help content %q", resp.Data.Content)
	}

	resp = b.teeCmdHandler(ctx, subCommand(string(TeeSunCmd)))
	want := "**RM** 2026-06-13\nSunrise 05:34, sunset 20:47"
	if resp.Data.Content != want {
		t.Errorf("sun content = %q; want %q", resp.Data.Content, want)
	}

	resp = b.teeCmdHandler(ctx, subCommand(string(TeeSunCmd),
		strOpt("area", "MI"), strOpt("date", "2026-07-01")))
	if !strings.HasPrefix(resp.Data.Content, "**MI** 2026-07-01") {
		t.Errorf("sun content = %q", resp.Data.Content)
	}
}

func TestInteractionHandler(t *testing.T) {
	b, priv := newTestBot(t)

	body := []byte(`{"type":1}`)
	req := httptest.NewRequest(http.MethodPost, "/DiscordBot/Interaction",
		bytes.NewReader(body))
	rec := httptest.NewRecorder()
	b.interactionHandler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unsigned request: status %v; want 401", rec.Code)
	}

	ts := "1718000000"
	sig := ed25519.Sign(priv, append([]byte(ts), body...))
	req = httptest.NewRequest(http.MethodPost, "/DiscordBot/Interaction",
		bytes.NewReader(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", ts)
	rec = httptest.NewRecorder()
	b.interactionHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("signed ping: status %v; want 200", rec.Code)
	}
	var resp discordgo.InteractionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Type != discordgo.InteractionResponsePong {
		t.Errorf("response type %v; want pong", resp.Type)
	}
}
