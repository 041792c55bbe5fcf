package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gabfl/makesite/internal/builder"
	"github.com/gabfl/makesite/internal/config"
	"github.com/gabfl/makesite/internal/scaffold"
	"github.com/gabfl/makesite/internal/server"
)

type appConfig struct {
	env    string
	port   int
	unsafe bool
}

const (
	contentDir = "content"
	layoutDir  = "layout"
	staticDir  = "static"
	configFile = "site.yaml"
)

func main() {
	log.SetFlags(0)

	appCfg := appConfig{}
	flag.StringVar(&appCfg.env, "e", "default", "Environment name (as declared under envs in site.yaml).")
	flag.IntVar(&appCfg.port, "port", 1313, "Port for the local development server.")
	flag.BoolVar(&appCfg.unsafe, "unsafe", false, "Disable HTML sanitization. Allows all raw HTML.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "makesite: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	command := "build"
	if len(args) > 0 {
		command = args[0]
	}

	opts := builder.Options{
		Unsafe:     appCfg.unsafe,
		ContentDir: contentDir,
		LayoutDir:  layoutDir,
		StaticDir:  staticDir,
	}

	switch command {
	case "build":
		if err := buildSite(appCfg.env, opts); err != nil {
			return err
		}
		fmt.Println("Build successful.")
		return nil

	case "serve":
		// Reload the config on every rebuild so site.yaml edits take
		// effect without restarting the server.
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		env, err := cfg.Env(appCfg.env)
		if err != nil {
			return err
		}
		rebuild := func() error {
			return buildSite(appCfg.env, opts)
		}
		watch := []string{contentDir, layoutDir, staticDir, configFile}
		return server.Run(appCfg.port, env.DocumentRoot, watch, rebuild)

	case "new":
		if len(args) < 3 {
			flag.Usage()
			return nil
		}
		if args[1] == "site" {
			return scaffold.CreateNewSite(args[2])
		}
		return scaffold.CreateNewContent(args[1], args[2], configFile)

	default:
		flag.Usage()
		return nil
	}
}

func buildSite(env string, opts builder.Options) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	site, err := builder.NewSite(cfg, env, opts)
	if err != nil {
		return err
	}
	return site.Build()
}

func printHelp() {
	fmt.Println("makesite - a small static site and blog generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  makesite [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build                 Build the site into the environment's document root (default)")
	fmt.Println("  serve                 Run a local dev server with auto-rebuild")
	fmt.Println("  new site <name>       Create a new site scaffold")
	fmt.Println("  new <section> <title> Create new dated content from the default archetype")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
