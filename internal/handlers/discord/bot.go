package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jmhart/voicetally/internal/common/clock"
	"github.com/jmhart/voicetally/internal/common/cooldown"
	sessionRepo "github.com/jmhart/voicetally/internal/repositories/session"
	"github.com/jmhart/voicetally/internal/services/reporter"
	"github.com/jmhart/voicetally/internal/services/tracker"
)

// Marker keys in the session store. The auto key holds the last local
// day a midnight report was posted for; the manual key holds the
// RFC3339 instant of the last /report-now run.
const (
	autoReportMetaKey   = "last_auto_report_day"
	manualReportMetaKey = "last_manual_report_at_utc"
)

// eventQueueSize bounds the gateway event buffer. Voice state churn in
// a single tracked channel is tiny compared to this.
const eventQueueSize = 256

type eventKind int

const (
	eventJoin eventKind = iota
	eventLeave
	eventReseed
	eventMidnight
)

// gatewayEvent carries one unit of work into the single-writer loop
type gatewayEvent struct {
	kind eventKind

	// join / leave
	userID string
	at     time.Time

	// reseed snapshot
	userIDs []string

	// midnight
	boundary time.Time
	endedDay string
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	trackerService  tracker.Service
	reporterService reporter.Service
	sessionRepo     sessionRepo.Repository
	clock           clock.Clock
	config          *Config

	// All tracker mutations flow through this channel into a single
	// goroutine, so join/leave/reseed/midnight work never interleaves.
	events     chan gatewayEvent
	loopCtx    context.Context
	loopCancel context.CancelFunc
	loopDone   chan struct{}

	mu                 sync.RWMutex
	ready              bool
	trackedChannelName string
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Guild the bot operates in
	GuildID string

	// Voice channel presence is tracked for
	TrackedVoiceChannelID string

	// Text channel daily reports are posted to
	ReportChannelID string

	// Timezone local days are computed in
	Timezone *time.Location

	// Global /report-now cooldown
	ReportNowCooldownSeconds int64

	// Tracker service
	Tracker tracker.Service

	// Reporter service
	Reporter reporter.Service

	// Session repository, used for report markers
	SessionRepo sessionRepo.Repository

	// Clock supplies event instants
	Clock clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.TrackedVoiceChannelID == "" {
		return nil, errors.New("tracked voice channel ID cannot be empty")
	}

	if cfg.ReportChannelID == "" {
		return nil, errors.New("report channel ID cannot be empty")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.Reporter == nil {
		return nil, errors.New("reporter service cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMembers

	loopCtx, loopCancel := context.WithCancel(context.Background())

	bot := &Bot{
		session:         session,
		commands:        make(map[string]CommandHandler),
		commandIDs:      make(map[string]string),
		trackerService:  cfg.Tracker,
		reporterService: cfg.Reporter,
		sessionRepo:     cfg.SessionRepo,
		clock:           cfg.Clock,
		config:          cfg,
		events:          make(chan gatewayEvent, eventQueueSize),
		loopCtx:         loopCtx,
		loopCancel:      loopCancel,
		loopDone:        make(chan struct{}),
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleGuildCreate)
	session.AddHandler(bot.handleVoiceStateUpdate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	go b.eventLoop()

	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewStatusCommand(b),
		NewTodayCommand(b),
		NewReportNowCommand(b),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	err := b.session.Close()

	b.loopCancel()
	<-b.loopDone

	return err
}

// RegisterCommand registers a command with Discord for the configured guild
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// OnMidnight is the scheduler callback. It hands the boundary to the
// event loop so rollover and reporting serialize with join/leave work.
func (b *Bot) OnMidnight(_ context.Context, boundary time.Time, endedDay string) {
	b.enqueue(gatewayEvent{
		kind:     eventMidnight,
		boundary: boundary,
		endedDay: endedDay,
	})
}

func (b *Bot) enqueue(ev gatewayEvent) {
	select {
	case b.events <- ev:
	case <-b.loopCtx.Done():
	}
}

// eventLoop is the single writer over tracker state
func (b *Bot) eventLoop() {
	defer close(b.loopDone)

	for {
		select {
		case <-b.loopCtx.Done():
			return
		case ev := <-b.events:
			b.handleEvent(ev)
		}
	}
}

func (b *Bot) handleEvent(ev gatewayEvent) {
	ctx := b.loopCtx

	switch ev.kind {
	case eventJoin:
		result, err := b.trackerService.StartSession(ctx, &tracker.StartSessionInput{
			UserID: ev.userID,
			At:     ev.at,
		})
		if err != nil {
			log.Printf("Failed to start session for user %s: %v", ev.userID, err)
			return
		}
		if result.Started {
			log.Printf("Session started for user %s", ev.userID)
		}

	case eventLeave:
		result, err := b.trackerService.EndSession(ctx, &tracker.EndSessionInput{
			UserID: ev.userID,
			At:     ev.at,
		})
		if err != nil {
			log.Printf("Failed to end session for user %s: %v", ev.userID, err)
			return
		}
		if result.Closed {
			log.Printf("Session closed for user %s, tracked %ds", ev.userID, result.TrackedSeconds)
		}

	case eventReseed:
		result, err := b.trackerService.Reseed(ctx, &tracker.ReseedInput{
			UserIDs: ev.userIDs,
			At:      ev.at,
		})
		if err != nil {
			log.Printf("Failed to reseed open sessions: %v", err)
			return
		}
		log.Printf("Reseeded open sessions: %d present, %d opened, %d removed",
			len(ev.userIDs), result.Opened, result.Removed)

	case eventMidnight:
		b.handleMidnight(ctx, ev.boundary, ev.endedDay)
	}
}

// handleMidnight splits open sessions at the boundary and posts the
// report for the day that just ended. The auto-report marker makes the
// posting idempotent per local day.
func (b *Bot) handleMidnight(ctx context.Context, boundary time.Time, endedDay string) {
	result, err := b.trackerService.RolloverOpenSessions(ctx, &tracker.RolloverOpenSessionsInput{
		Boundary: boundary,
	})
	if err != nil {
		log.Printf("Failed to roll over open sessions at %s: %v", endedDay, err)
	} else if result.RolledOver > 0 {
		log.Printf("Rolled over %d open sessions across %s", result.RolledOver, endedDay)
	}

	lastReported, err := b.sessionRepo.GetMeta(ctx, &sessionRepo.GetMetaInput{
		Key: autoReportMetaKey,
	})
	if err != nil {
		log.Printf("Failed to read auto-report marker: %v", err)
		return
	}
	if lastReported == endedDay {
		log.Printf("Report for %s already posted, skipping", endedDay)
		return
	}

	rows, err := b.reporterService.BuildDayRows(ctx, &reporter.BuildDayRowsInput{
		Day:      endedDay,
		Resolver: b.memberResolver(),
	})
	if err != nil {
		log.Printf("Failed to build report rows for %s: %v", endedDay, err)
		return
	}

	content := b.reporterService.BuildReportContent(endedDay, b.TrackedChannelName(), rows.Rows)
	if err := b.postReport(content); err != nil {
		log.Printf("Failed to post report for %s: %v", endedDay, err)
		return
	}

	// Marker is written only after a successful post, so a failed send
	// gets retried at the next boundary for a different day at worst.
	if err := b.sessionRepo.SetMeta(ctx, &sessionRepo.SetMetaInput{
		Key:   autoReportMetaKey,
		Value: endedDay,
	}); err != nil {
		log.Printf("Failed to record auto-report marker for %s: %v", endedDay, err)
	}

	log.Printf("Posted daily report for %s (%d rows)", endedDay, len(rows.Rows))
}

// postReport sends a report message with all mentions suppressed
func (b *Bot) postReport(content string) error {
	_, err := b.session.ChannelMessageSendComplex(b.config.ReportChannelID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	return err
}

// handleGuildCreate validates the configured channels and reseeds open
// sessions from the guild's voice state snapshot. Discord sends this on
// every (re)connect, so sessions heal after gateway drops too.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.ID != b.config.GuildID {
		return
	}

	var trackedChannel, reportChannel *discordgo.Channel
	for _, ch := range g.Channels {
		switch ch.ID {
		case b.config.TrackedVoiceChannelID:
			trackedChannel = ch
		case b.config.ReportChannelID:
			reportChannel = ch
		}
	}

	if trackedChannel == nil || trackedChannel.Type != discordgo.ChannelTypeGuildVoice {
		log.Printf("TRACKED_VOICE_CHANNEL_ID %s is not a voice channel in guild %s, tracking disabled",
			b.config.TrackedVoiceChannelID, g.ID)
		return
	}

	if reportChannel == nil || reportChannel.Type != discordgo.ChannelTypeGuildText {
		log.Printf("REPORT_CHANNEL_ID %s is not a text channel in guild %s, tracking disabled",
			b.config.ReportChannelID, g.ID)
		return
	}

	if perms, err := s.State.UserChannelPermissions(s.State.User.ID, reportChannel.ID); err != nil {
		log.Printf("Failed to check permissions for report channel %s: %v", reportChannel.ID, err)
	} else if perms&discordgo.PermissionSendMessages == 0 {
		log.Printf("Missing send-messages permission in report channel %s", reportChannel.ID)
	}

	b.mu.Lock()
	b.ready = true
	b.trackedChannelName = trackedChannel.Name
	b.mu.Unlock()

	members := make(map[string]*discordgo.Member, len(g.Members))
	for _, m := range g.Members {
		if m.User != nil {
			members[m.User.ID] = m
		}
	}

	var present []string
	for _, vs := range g.VoiceStates {
		if vs.ChannelID != b.config.TrackedVoiceChannelID {
			continue
		}
		if vs.UserID == s.State.User.ID {
			continue
		}
		if m, ok := members[vs.UserID]; ok && m.User.Bot {
			continue
		}
		present = append(present, vs.UserID)
	}

	b.enqueue(gatewayEvent{
		kind:    eventReseed,
		userIDs: present,
		at:      b.clock.Now(),
	})
}

// handleVoiceStateUpdate translates raw voice state transitions into
// join/leave events for the tracked channel only
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, vsu *discordgo.VoiceStateUpdate) {
	if vsu.GuildID != b.config.GuildID {
		return
	}

	if vsu.UserID == s.State.User.ID {
		return
	}

	if vsu.Member != nil && vsu.Member.User != nil && vsu.Member.User.Bot {
		return
	}

	wasTracked := vsu.BeforeUpdate != nil && vsu.BeforeUpdate.ChannelID == b.config.TrackedVoiceChannelID
	isTracked := vsu.ChannelID == b.config.TrackedVoiceChannelID

	// Mute/deafen toggles and moves between untracked channels land here
	if wasTracked == isTracked {
		return
	}

	ev := gatewayEvent{
		userID: vsu.UserID,
		at:     b.clock.Now(),
	}
	if isTracked {
		ev.kind = eventJoin
	} else {
		ev.kind = eventLeave
	}

	b.enqueue(ev)
}

// handleInteraction dispatches slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	}
}

// TrackedChannelName returns the resolved name of the tracked voice
// channel, or a placeholder before the guild snapshot arrives
func (b *Bot) TrackedChannelName() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.trackedChannelName == "" {
		return "voice"
	}
	return b.trackedChannelName
}

// reportChannelName resolves the report channel's name from guild
// state, falling back to the raw ID
func (b *Bot) reportChannelName(s *discordgo.Session) string {
	if ch, err := s.State.Channel(b.config.ReportChannelID); err == nil && ch != nil {
		return ch.Name
	}
	return b.config.ReportChannelID
}

// cooldownRemaining returns how many seconds of the global /report-now
// cooldown are left. Read errors fail open so a store hiccup cannot
// wedge the command shut.
func (b *Bot) cooldownRemaining(ctx context.Context, now time.Time) int64 {
	lastRun, err := b.sessionRepo.GetMeta(ctx, &sessionRepo.GetMetaInput{
		Key: manualReportMetaKey,
	})
	if err != nil {
		log.Printf("Failed to read manual-report marker: %v", err)
		return 0
	}

	return cooldown.RemainingSeconds(lastRun, b.config.ReportNowCooldownSeconds, now)
}

// recordManualReport stamps the manual-report marker with now
func (b *Bot) recordManualReport(ctx context.Context, now time.Time) {
	if err := b.sessionRepo.SetMeta(ctx, &sessionRepo.SetMetaInput{
		Key:   manualReportMetaKey,
		Value: now.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("Failed to record manual-report marker: %v", err)
	}
}

// memberResolver resolves display names from the session's guild state
func (b *Bot) memberResolver() reporter.MemberResolver {
	return &stateMemberResolver{
		session: b.session,
		guildID: b.config.GuildID,
	}
}

type stateMemberResolver struct {
	session *discordgo.Session
	guildID string
}

// DisplayName prefers the server nickname, then the global display
// name, then the username
func (r *stateMemberResolver) DisplayName(userID string) (string, bool) {
	member, err := r.session.State.Member(r.guildID, userID)
	if err != nil || member == nil || member.User == nil {
		return "", false
	}

	if member.Nick != "" {
		return member.Nick, true
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName, true
	}
	if member.User.Username != "" {
		return member.User.Username, true
	}
	return "", false
}
