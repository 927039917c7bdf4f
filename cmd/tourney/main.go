package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/justinjudd/tourney"
	"github.com/justinjudd/tourney/models"
	"github.com/justinjudd/tourney/models/storm"
	"github.com/justinjudd/tourney/tournament"
)

// errInvalidConfig is returned after a failed validation has been reported
var errInvalidConfig = errors.New("invalid tournament config")

func main() {
	log := logrus.New()
	env, err := LoadEnv()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(env.LogLevel)

	if err := run(os.Args[1:], env, os.Stdout, log); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tourney <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate -config FILE [-save]  generate a tournament structure and print the export")
	fmt.Fprintln(w, "  validate -config FILE          check a config without generating")
	fmt.Fprintln(w, "  formats                        list the supported formats")
	fmt.Fprintln(w, "  list [-format FORMAT]          list saved tournaments")
	fmt.Fprintln(w, "  show -id ID                    print a saved tournament")
	fmt.Fprintln(w, "  delete -id ID                  remove a saved tournament")
}

func run(args []string, env *Env, stdout io.Writer, log *logrus.Logger) error {
	if len(args) < 1 {
		printUsage(stdout)
		return nil
	}
	registry := tournament.NewStandardRegistry()
	command, args := args[0], args[1:]
	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.SetOutput(stdout)

	switch command {
	case "formats":
		for _, f := range registry.Formats() {
			fmt.Fprintln(stdout, f)
		}
		return nil

	case "validate", "generate":
		configPath := flags.String("config", "tournament.yaml", "Path to the tournament config file")
		save := flags.Bool("save", false, "Save the generated tournament to the store")
		if err := flags.Parse(args); err != nil {
			return err
		}
		cfg, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg, err = withDefaults(registry, cfg)
		if err != nil {
			return err
		}
		result, err := registry.Validate(cfg)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, e := range result.Errors {
				log.WithFields(logrus.Fields{"field": e.Field, "code": e.Code}).Warn(e.Message)
			}
			return fmt.Errorf("%w: %v", errInvalidConfig, result.Err())
		}
		if command == "validate" {
			fmt.Fprintf(stdout, "%s config is valid\n", cfg.Format)
			return nil
		}
		return generate(registry, cfg, *save, env, stdout, log)

	case "list":
		format := flags.String("format", "", "Only list tournaments of this format")
		if err := flags.Parse(args); err != nil {
			return err
		}
		return withStore(env, log, func(store *storm.Store) error {
			var summaries []storm.Summary
			var err error
			if *format == "" {
				summaries, err = store.List()
			} else {
				summaries, err = store.ListByFormat(models.FormatType(*format))
			}
			if err != nil {
				return err
			}
			for _, s := range summaries {
				fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", s.ID, s.Format, s.SavedAt.Format(time.RFC3339), s.Name)
			}
			return nil
		})

	case "show", "delete":
		id := flags.String("id", "", "Id of the saved tournament")
		if err := flags.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("%s needs -id", command)
		}
		return withStore(env, log, func(store *storm.Store) error {
			if command == "delete" {
				return store.Delete(*id)
			}
			e, err := store.Get(*id)
			if err != nil {
				return err
			}
			data, err := e.Marshal()
			if err != nil {
				return err
			}
			_, err = stdout.Write(append(data, '\n'))
			return err
		})
	}

	printUsage(stdout)
	return fmt.Errorf("unknown command %q", command)
}

// withDefaults fills in the default options of the format when the config carries none
func withDefaults(registry *tournament.Registry, cfg models.Config) (models.Config, error) {
	if cfg.Options != nil {
		return cfg, nil
	}
	f, err := registry.Get(cfg.Format)
	if err != nil {
		return cfg, err
	}
	cfg.Options = f.DefaultConfig(cfg.Participants).Options
	return cfg, nil
}

func generate(registry *tournament.Registry, cfg models.Config, save bool, env *Env, stdout io.Writer, log *logrus.Logger) error {
	structure, err := registry.Generate(cfg)
	if err != nil {
		return err
	}
	envelope := tourney.NewEnvelope(cfg, structure, nil)
	log.WithFields(logrus.Fields{"id": envelope.ID, "format": cfg.Format, "participants": len(cfg.Participants)}).Info("generated tournament")

	if save {
		err := withStore(env, log, func(store *storm.Store) error {
			return store.Save(envelope)
		})
		if err != nil {
			return err
		}
	}
	data, err := envelope.Marshal()
	if err != nil {
		return err
	}
	_, err = stdout.Write(append(data, '\n'))
	return err
}

func withStore(env *Env, log *logrus.Logger, fn func(*storm.Store) error) error {
	store, err := storm.Open(env.StorePath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}()
	return fn(store)
}
