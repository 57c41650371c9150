package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tlowery/flint/internal/ai"
	"github.com/tlowery/flint/internal/common/clock"
	"github.com/tlowery/flint/internal/handlers/discord"
	"github.com/tlowery/flint/internal/media"
	"github.com/tlowery/flint/internal/repositories/ledger"
	"github.com/tlowery/flint/internal/rng"
	"github.com/tlowery/flint/internal/services/drawing"
	"github.com/tlowery/flint/internal/services/economy"
	"github.com/tlowery/flint/internal/services/playback"
)

func main() {
	// Load .env when present; deployments set the environment directly
	_ = godotenv.Load()

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get OpenAI key from environment
	openaiKey := getEnv("OPENAI_KEY", "")
	if openaiKey == "" {
		log.Fatal("OPENAI_KEY environment variable is required")
	}

	// Initialize the ledger repository. With REDIS_ADDR set balances survive
	// restarts; without it they live in process memory.
	ledgerRepo, err := newLedgerRepo()
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	// Initialize economy service
	economySvc, err := economy.New(&economy.Config{
		LedgerRepo: ledgerRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create economy service: %v", err)
	}

	// Initialize Discord session
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	gateway, err := discord.NewGateway(session)
	if err != nil {
		log.Fatalf("Failed to create Discord gateway: %v", err)
	}

	// Initialize drawing service
	drawingSvc, err := drawing.New(&drawing.Config{
		Messenger: gateway,
		Clock:     clock.New(),
		Picker:    rng.New(&rng.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create drawing service: %v", err)
	}

	// Initialize playback service
	playbackSvc, err := playback.New(&playback.Config{
		Dialer:   gateway,
		Resolver: media.NewYouTubeResolver(),
	})
	if err != nil {
		log.Fatalf("Failed to create playback service: %v", err)
	}

	// Initialize AI client
	aiClient, err := ai.NewOpenAI(&ai.Config{
		APIKey: openaiKey,
	})
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:  session,
		Prefix:   getEnv("COMMAND_PREFIX", discord.DefaultPrefix),
		Economy:  economySvc,
		Drawing:  drawingSvc,
		Playback: playbackSvc,
		AI:       aiClient,
		Clock:    clock.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	log.Println("Bot is running")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newLedgerRepo selects the ledger backend from the environment
func newLedgerRepo() (ledger.Repository, error) {
	redisAddr := getEnv("REDIS_ADDR", "")
	if redisAddr == "" {
		return ledger.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return ledger.NewRedis(&ledger.Config{
		RedisClient: redisClient,
	})
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
