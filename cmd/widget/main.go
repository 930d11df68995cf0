package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-CampBooking/internal/config"
	"github.com/m04kA/SMC-CampBooking/internal/domain"
	"github.com/m04kA/SMC-CampBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CampBooking/internal/widget"
	"github.com/m04kA/SMC-CampBooking/internal/widget/calendar"
	"github.com/m04kA/SMC-CampBooking/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к config.toml")
	apiURL := flag.String("api", "", "адрес API бронирования (по умолчанию из config.toml)")
	dateFlag := flag.String("date", "", "дата в формате YYYY-MM-DD (по умолчанию сегодня)")
	expand := flag.String("expand", "", "час, который нужно раскрыть, например 10")
	selectTime := flag.String("select", "", "время, которое нужно выбрать, например 10:15")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	baseURL := cfg.Widget.APIBaseURL
	if *apiURL != "" {
		baseURL = *apiURL
	}

	clock := &calendar.RealTimeProvider{}
	now := clock.Now()
	date := now
	if *dateFlag != "" {
		date, err = time.ParseInLocation(domain.DateFormat, *dateFlag, now.Location())
		if err != nil {
			log.Fatal("Invalid date %q: %v", *dateFlag, err)
		}
	}

	presenter := &terminalPresenter{out: os.Stdout}
	client := bookingapi.NewClient(baseURL, time.Duration(cfg.Widget.Timeout)*time.Second, log)
	w := widget.New(widget.Deps{
		Presenter:        presenter,
		Fetcher:          client,
		Platform:         terminalPlatform{},
		Registrar:        client,
		Clock:            clock,
		Logger:           log,
		ServiceWorkerURL: cfg.Widget.ServiceWorkerURL,
	})

	ctx := context.Background()

	if !w.Push.Init(ctx, cfg.Push.VAPIDPublicKey) {
		log.Info("Push notifications are unavailable: state=%s", w.Push.State())
	}

	delta := (date.Year()-now.Year())*12 + int(date.Month()) - int(now.Month())
	if delta != 0 {
		w.Calendar.Navigate(delta)
	}

	if err := w.Calendar.Click(ctx, date.Day()); err != nil {
		presenter.printGrid(w.Calendar.Grid())
		log.Error("Failed to select date %s: %v", date.Format(domain.DateFormat), err)
		os.Exit(1)
	}
	presenter.printGrid(w.Calendar.Grid())

	if *expand != "" {
		if err := w.Slots.Toggle(*expand); err != nil {
			log.Warn("Failed to expand hour %s: %v", *expand, err)
		}
	}
	if *selectTime != "" {
		if err := w.Slots.SelectTimeSlot(*selectTime); err != nil {
			log.Warn("Failed to select time %s: %v", *selectTime, err)
		}
	}

	presenter.printBlocks(w.Slots.Blocks())
}
