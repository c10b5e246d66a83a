/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/internal/config"
)

type TopLevelCommand string

const TeeCmd TopLevelCommand = "tee"

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

type sunLookup interface {
	LookupOrDefault(ctx context.Context, area string,
		date time.Time) ephemeris.SunTimes
}

type bot struct {
	pubKey      ed25519.PublicKey
	logger      *zap.Logger
	sun         sunLookup
	defaultArea string
	now         func() time.Time

	topLevelCmdHdlrs map[TopLevelCommand]CmdHandler
	teeSubCmdHdlrs   map[TeeSubCommand]CmdHandler
}

func newBot(pubKey ed25519.PublicKey, logger *zap.Logger, sun sunLookup,
	defaultArea string) *bot {

	b := &bot{
		pubKey:      pubKey,
		logger:      internal.OrNop(logger),
		sun:         sun,
		defaultArea: defaultArea,
		now:         time.Now,
	}
	b.topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
		TeeCmd: b.teeCmdHandler,
	}
	b.teeSubCmdHdlrs = map[TeeSubCommand]CmdHandler{
		TeeHelpCmd:     b.teeHelpCmdHandler,
		TeeScheduleCmd: b.teeScheduleCmdHandler,
		TeeSunCmd:      b.teeSunCmdHandler,
	}
	return b
}

func (b *bot) interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, b.pubKey) {
		b.logger.Warn("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		b.logger.Warn("discordbot.int: failed to read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		b.logger.Warn("discordbot.int: failed to unmarshal interaction",
			zap.Error(err), zap.ByteString("body", body))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	switch inter.Type {
	case discordgo.InteractionPing:
		resp.Type = discordgo.InteractionResponsePong
	case discordgo.InteractionApplicationCommand:
		name := inter.ApplicationCommandData().Name
		hdlr, ok := b.topLevelCmdHdlrs[TopLevelCommand(name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'", name),
				Flags:   discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	default:
		b.logger.Warn("discordbot.int: unimplemented interaction type",
			zap.Int("type", int(inter.Type)))
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		b.logger.Error("discordbot.int: failed to marshal resp", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(rawResp); err != nil {
		b.logger.Warn("discordbot.int: failed to write resp", zap.Error(err))
	}
}

func registerSlashCommands(session *discordgo.Session, appID string,
	logger *zap.Logger) {

	cmds, err := session.ApplicationCommandBulkOverwrite(appID, "",
		[]*discordgo.ApplicationCommand{teeCommand()})
	if err != nil {
		logger.Error("discordbot.reg: failed to register commands", zap.Error(err))
		return
	}
	for _, c := range cmds {
		logger.Info("discordbot.reg: registered", zap.String("name", c.Name),
			zap.String("id", c.ID))
	}
}

func main() {
	cfg, err := config.Load(os.Getenv("TEETIMES_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "discordbot: %v\n", err)
		os.Exit(1)
	}
	logger, err := internal.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "discordbot: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cfg.DiscordReady(); err != nil {
		logger.Fatal("discordbot.main: incomplete configuration", zap.Error(err))
	}
	pubKeyBytes, err := hex.DecodeString(cfg.Discord.PublicKey)
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		logger.Fatal("discordbot.main: failed to parse public key", zap.Error(err))
	}
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal("discordbot.main: failed to initialize discord client",
			zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT,
		syscall.SIGTERM)
	defer stop()

	sun := ephemeris.NewClient(ctx,
		ephemeris.WithBaseURL(cfg.Ephemeris.BaseURL),
		ephemeris.WithCacheBucket(cfg.Cache.Bucket),
		ephemeris.WithLogger(logger))
	b := newBot(ed25519.PublicKey(pubKeyBytes), logger, sun,
		cfg.Ephemeris.DefaultArea)

	go registerSlashCommands(session, cfg.Discord.AppID, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/DiscordBot/Interaction", b.interactionHandler)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Discord.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("discordbot.main: starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("discordbot.main: serve failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("discordbot.main: shutdown failed", zap.Error(err))
	}
	logger.Info("discordbot.main: exiting")
}
