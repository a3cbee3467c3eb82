package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"swipefeed/internal/config"
	"swipefeed/internal/domain"
	"swipefeed/internal/eventbus"
	"swipefeed/internal/feed"
	"swipefeed/internal/logging"
	"swipefeed/internal/source"
	"swipefeed/internal/ui"
)

var (
	verbose    bool
	configPath string
	category   string
	apiURL     string
)

var rootCmd = &cobra.Command{
	Use:   "swipefeed",
	Short: "Browse the community feed one post at a time",
	Long: `swipefeed is a full-screen terminal client for browsing community
posts. Swipe with the mouse or use the arrow keys to move through the
feed; double-click or press l to like the current post.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	logging.Init(config.GetString("log.file"), verbose)

	// Flag overrides
	if apiURL != "" {
		config.SetString("api.base_url", apiURL)
	}
	if category != "" {
		config.SetString("feed.category", category)
	}

	baseURL := config.GetString("api.base_url")
	client := source.NewClient(baseURL, time.Duration(config.GetInt("api.timeout"))*time.Second)

	bus := eventbus.New()
	svc := feed.NewService(bus, client, config.GetInt("feed.page_size"))
	defer svc.Close()

	model := ui.NewModel(bus, ui.Options{
		Filter:            domain.FeedFilter{Category: config.GetString("feed.category")},
		PrefetchLookahead: config.GetInt("feed.prefetch_lookahead"),
		GestureThreshold:  config.GetFloat64("gesture.threshold"),
		AnimationDuration: time.Duration(config.GetInt("ui.animation_ms")) * time.Millisecond,
		ShareBaseURL:      baseURL,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Forward completion events from the bus into the program
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logging.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	bus.Subscribe(domain.EventFeedPageLoaded, forward)
	bus.Subscribe(domain.EventFeedLoadFailed, forward)
	bus.Subscribe(domain.EventLikeUpdated, forward)
	bus.Subscribe(domain.EventLikeFailed, forward)
	bus.Subscribe(domain.EventShareReady, forward)
	bus.Subscribe(domain.EventShareFailed, forward)

	// The remix flow lives outside this client; log the handoff
	bus.Subscribe(domain.EventRemixRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.RemixRequestedEvent); ok {
			logging.Info("remix requested", "post", event.PostID)
		}
	})

	go func() {
		for event := range eventChan {
			p.Send(ui.FeedEventMsg{Event: event})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	close(eventChan)
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.Flags().StringVarP(&category, "category", "c", "", "Only show posts from this category")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Override the API base URL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
