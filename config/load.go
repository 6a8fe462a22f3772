package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

var ErrUnknownScenario = errors.New("unknown scenario")

// Load resolves the startup configuration from command line arguments,
// the environment (an optional .env file included) and the built-in
// scenarios, in that order of precedence.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using environment variables")
	}

	flags := pflag.NewFlagSet("nutcaster", pflag.ContinueOnError)
	flags.String("scenario", DefaultScenario, "scenario to play")
	flags.String("config", "", "YAML file merged over the built-in scenarios")
	flags.Bool("fog", false, "fade distant walls and sprites")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(scenariosYAML)); err != nil {
		return nil, fmt.Errorf("read built-in scenarios: %w", err)
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix("NUTCASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := defaultConfig()
	cfg.Fog = v.GetBool("fog")

	name := v.GetString("scenario")
	if name == "" {
		name = DefaultScenario
	}
	key := "scenarios." + name
	if !v.IsSet(key) {
		return nil, fmt.Errorf("%w %q", ErrUnknownScenario, name)
	}

	var override Scenario
	if err := v.UnmarshalKey(key, &override); err != nil {
		return nil, fmt.Errorf("decode scenario %q: %w", name, err)
	}
	if override.Name == "" {
		override.Name = name
	}

	sc, err := Overlay(Default(), override)
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	cfg.Scenario = sc

	log.Printf("[config] scenario %q: %d weapons, health %d, goal %d", sc.Name, len(sc.Weapons), sc.Health, sc.Goal)
	return cfg, nil
}

// Overlay copies every non-zero field of override onto base. Slices are
// replaced as a whole rather than merged element by element.
func Overlay(base, override Scenario) (Scenario, error) {
	weapons, rolls := override.Weapons, override.EnemyRolls
	override.Weapons, override.EnemyRolls = nil, nil

	if err := copier.CopyWithOption(&base, &override, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return base, fmt.Errorf("overlay scenario %q: %w", override.Name, err)
	}

	if len(weapons) > 0 {
		base.Weapons = nil
		if err := copier.CopyWithOption(&base.Weapons, &weapons, copier.Option{DeepCopy: true}); err != nil {
			return base, fmt.Errorf("copy weapons of %q: %w", override.Name, err)
		}
	}
	if len(rolls) > 0 {
		base.EnemyRolls = append([]int(nil), rolls...)
	}
	return base, nil
}
