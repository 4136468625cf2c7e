// Command demo registers two functions and a method on one delegate and calls
// them together, then shows a delegate that passes an argument.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/zoobzio/delegate"
	"github.com/zoobzio/delegate/internal/app"
)

var log zerolog.Logger

func first() {
	log.Info().Msg("called the first function")
}

func second() {
	log.Info().Msg("called the second function")
}

func withValue(n int) {
	log.Info().Int("value", n).Msg("called the function with a value")
}

type greeter struct {
	name string
}

func (g *greeter) hello() {
	log.Info().Str("name", g.name).Msg("called a method of greeter")
}

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	log = app.NewLogger(cfg.Log)
	if err != nil {
		log.Error().Err(err).Msg("[demo] load config")
		os.Exit(1)
	}

	g := &greeter{name: "demo"}
	hello, err := delegate.ActionMethod(g, (*greeter).hello)
	if err != nil {
		log.Error().Err(err).Msg("[demo] bind method")
		os.Exit(1)
	}

	d := delegate.New[delegate.Unit, delegate.Unit](
		delegate.WithName("actions"),
		delegate.WithLogger(log),
	)
	d.Add(delegate.Action(first)).
		Add(delegate.Action(second)).
		Add(hello).
		Add(delegate.Action(first)) // already registered, ignored

	d.Invoke(delegate.Unit{})

	values := delegate.From(delegate.Handler(withValue), delegate.WithName("values"), delegate.WithLogger(log))
	values.Invoke(42)
}
