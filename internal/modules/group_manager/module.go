package group_manager

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/yesbot/internal/bot"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/usecases"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/infrastructure"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/presentation/discord"
	"gorm.io/gorm"
)

func init() {
	bot.Register(&GroupManagerModule{})
}

// Compile-time interface checks.
var (
	_ bot.ConfigurableModule = (*GroupManagerModule)(nil)
	_ bot.IntentsModule      = (*GroupManagerModule)(nil)
)

// GroupManagerModule provides group search with reaction paging.
type GroupManagerModule struct {
	config    *Config
	handlers  *discord.Handlers
	reactions *infrastructure.ReactionCollector
	db        *gorm.DB
}

// Name returns the module name.
func (m *GroupManagerModule) Name() string {
	return "group_manager"
}

// Commands returns the slash commands for this module.
func (m *GroupManagerModule) Commands() []*discordgo.ApplicationCommand {
	return discord.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *GroupManagerModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"group": m.handlers.HandleGroup,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *GroupManagerModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		m.handlers.HandleMessageCreate,
		m.handlers.HandleMessageReactionAdd,
	}
}

// Intents returns the gateway intents needed for message commands and reactions.
func (m *GroupManagerModule) Intents() discordgo.Intent {
	return discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *GroupManagerModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *GroupManagerModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := m.openRepository(ctx)
	if err != nil {
		return err
	}

	// Create infrastructure
	m.reactions = infrastructure.NewReactionCollector(infrastructure.DefaultReactionBufferSize)
	messenger := infrastructure.NewMessenger(deps.Session)
	channels := infrastructure.NewChannelDirectory(deps.Session)

	// Create services
	search := usecases.NewGroupSearchService(repo, messenger, domain.DefaultPageSize)
	paging := usecases.NewPagingService(messenger, m.reactions, m.config.WaitWindow)
	commandChannels := usecases.NewCommandChannelService(channels, m.config.SearchChannels)
	reactionInput := usecases.NewReactionInputService(m.reactions)

	// Create presentation handlers
	m.handlers = discord.NewHandlers(ctx, commandChannels, search, paging, reactionInput)

	slog.Info("group_manager module initialized",
		"store", m.config.StoreDriver,
		"channels", m.config.SearchChannels,
		"wait_window", m.config.WaitWindow.String(),
	)

	return nil
}

// openRepository opens the group store selected by the configuration.
func (m *GroupManagerModule) openRepository(ctx context.Context) (domain.GroupRepository, error) {
	if m.config.StoreDriver == infrastructure.DriverMemory {
		repo := infrastructure.NewMemoryRepository()
		if err := infrastructure.SeedMemoryRepository(ctx, repo, m.config.StoreSeedFile); err != nil {
			return nil, err
		}
		slog.Info("seeded in-memory group store",
			"file", m.config.StoreSeedFile,
			"groups", repo.Count(),
		)
		return repo, nil
	}

	db, err := infrastructure.OpenDatabase(m.config.StoreDriver, m.config.StoreDSN)
	if err != nil {
		return nil, err
	}
	m.db = db

	repo := infrastructure.NewGormGroupRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate group store: %w", err)
	}
	return repo, nil
}

// Shutdown cleans up module resources.
func (m *GroupManagerModule) Shutdown() error {
	// Close reaction feed so waiting sessions end
	if m.reactions != nil {
		slog.Info("closing group search reaction feed", "open_sessions", m.reactions.Subscriptions())
		m.reactions.Close()
	}

	if m.db != nil {
		return infrastructure.CloseDatabase(m.db)
	}

	return nil
}
