package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/showkit/showcase-kiosk/internal/api"
	"github.com/showkit/showcase-kiosk/internal/config"
	"github.com/showkit/showcase-kiosk/internal/pricing"
	"github.com/showkit/showcase-kiosk/internal/slideshow"
	"github.com/showkit/showcase-kiosk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.showkit.showcase-kiosk"
	AppName = "Showcase Kiosk"

	WindowWidth  = 1024
	WindowHeight = 768
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Infof("%s v%s starting...", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply kiosk theme
	myApp.Settings().SetTheme(ui.NewKioskTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.NewClient(settings.GetAPIBaseURL())

	// Create and setup UI, then attach the widget controllers to the
	// surfaces it exposes
	root := ui.NewRootUI(myWindow, myApp, settings)

	controller := slideshow.NewController(root.Surface(), client, settings.GetCycleInterval())
	updater := pricing.NewUpdater(root.PriceBoard(), client, settings)
	root.Bind(controller, updater)

	ctx := context.Background()
	go controller.Load(ctx)
	go updater.Initialize(ctx, root.CurrencySelector())

	myWindow.SetOnClosed(controller.Close)

	// Show and run
	myWindow.ShowAndRun()
}
