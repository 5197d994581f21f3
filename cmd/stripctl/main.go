package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/callebjorkell/stripctl/internal/neopixel"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("stripctl", "Drive WS281x LED strips from a Raspberry Pi")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	colorLog   = app.Flag("color", "Colored log output without timestamps.").Bool()
	configFile = app.Flag("config", "Configuration file.").Short('f').Default("stripctl.yaml").String()
	driverName = app.Flag("driver", "Driver to use, overrides the configuration file.").String()

	info = app.Command("info", "Show the device configuration and buffer contents.")

	fill        = app.Command("fill", "Fill a channel with a single color.")
	fillColor   = fill.Arg("color", "Color as #rrggbb, 0xWWRRGGBB or a number.").Required().String()
	fillChannel = fill.Flag("channel", "Channel to fill.").Short('c').Default("0").Int()

	set      = app.Command("set", "Set a single LED on the first channel.")
	setIndex = set.Arg("index", "Index of the LED.").Required().Int()
	setColor = set.Arg("color", "Color as #rrggbb, 0xWWRRGGBB or a number.").Required().String()

	demo         = app.Command("demo", "Cycle through a set of dim colors.")
	rainbow      = app.Command("rainbow", "Show a rainbow until interrupted.")
	breathe      = app.Command("breathe", "Breathe a color until interrupted.")
	breatheColor = breathe.Arg("color", "Color as #rrggbb, 0xWWRRGGBB or a number.").Required().String()

	drivers = app.Command("drivers", "List the available drivers.")
	version = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("stripctl: dev")
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	setupLogging(*colorLog, *debug)

	switch cmd {
	case info.FullCommand():
		err = withDevice(showInfo)
	case fill.FullCommand():
		err = withDevice(fillChannelCmd(*fillChannel, *fillColor))
	case set.FullCommand():
		err = withDevice(setLedCmd(*setIndex, *setColor))
	case demo.FullCommand():
		err = withDevice(runDemo)
	case rainbow.FullCommand():
		err = withDevice(runRainbow)
	case breathe.FullCommand():
		err = withDevice(runBreathe(*breatheColor))
	case drivers.FullCommand():
		fmt.Println(strings.Join(neopixel.Drivers(), "\n"))
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}

	if err != nil {
		log.Fatal(err)
	}
}

func openDevice() (*neopixel.Device, error) {
	conf, err := readConfig(*configFile)
	if err != nil {
		return nil, err
	}
	devConf := conf.DeviceConfig()
	if *driverName != "" {
		devConf.Driver = *driverName
	}
	return neopixel.Open(devConf)
}
