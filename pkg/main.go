package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/ideax-social/feedcore/pkg/internal"
	"github.com/ideax-social/feedcore/pkg/internal/cache"
	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/ideax-social/feedcore/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ___    _            __  __\n|_ _|__| | ___  __ _ \\ \\/ /\n | |/ _` |/ _ \\/ _` | \\  /\n | | (_| |  __/ (_| | /  \\\n|___\\__,_|\\___|\\__,_|/_/\\_\\"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("IdeaX Feedcore"), pkg.AppVersion)
	fmt.Printf("The feed and social-graph state store behind IdeaX\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare the in-process cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache store.")
	}

	currentUser := models.User{
		ID:          viper.GetString("account.id"),
		Username:    viper.GetString("account.username"),
		DisplayName: viper.GetString("account.display_name"),
		AvatarURL:   viper.GetString("account.avatar_url"),
		Bio:         viper.GetString("account.bio"),
	}

	feed := services.NewFeedStore(currentUser)
	conversations := services.NewConversationStore(currentUser)

	feed.Subscribe(func() {
		log.Debug().
			Int("posts", len(feed.Posts())).
			Bool("loading", feed.Loading()).
			Msg("Feed state changed...")
	})

	feed.LoadInitial(context.Background())
	trending := services.TrendingTagsCached(feed.Version(), feed.Posts())
	log.Info().Int("posts", len(feed.Posts())).Int("trending", len(trending)).Msg("Initial feed loaded!")

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 5m", func() {
		feed.LoadMore(context.Background())
	})
	quartz.Start()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	conversations.Close()
}
