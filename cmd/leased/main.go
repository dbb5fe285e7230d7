package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/cmd/leased/app"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/commands"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/commands/server"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/tendermint/tendermint/libs/log"
)

type command struct {
	help string
	run  func(env, []string) error
}

// env is shared by all commands.
type env struct {
	home   string
	logger log.Logger
}

var commandSet = map[string]command{
	"init": {"write the app_state of a development chain into the genesis file", func(e env, args []string) error {
		return server.InitCmd(app.GenInitOptions, e.logger, e.home, args)
	}},
	"start": {"run the ABCI server", func(e env, args []string) error {
		return server.StartCmd(app.GenerateApp, e.logger, e.home, args)
	}},
	"validate": {"load genesis files without starting the chain", func(_ env, args []string) error {
		return server.ValidateGenesis(app.Initializer(), args)
	}},
	"keygen": {"generate a private key and print its address", func(env, []string) error {
		key, addr := app.GenerateKey()
		fmt.Printf("private key: %s\naddress:     %s\n", hex.EncodeToString(key.Ed25519), addr)
		b, err := addr.Bech32()
		if err != nil {
			return err
		}
		fmt.Printf("bech32:      %s\n", b)
		return nil
	}},
	"getblock": {"print a block from blockstore.db as JSON", func(_ env, args []string) error {
		return server.GetBlockCmd(os.Stdout, args)
	}},
	"retry": {"execute the last block again and compare the app hash", func(e env, args []string) error {
		return server.RetryCmd(app.InlineApp, e.logger, os.Stdout, args)
	}},
	"deposit": {"print the deposit of a lease stored in abci.db as JSON", func(e env, args []string) error {
		if len(args) != 2 {
			return errors.Wrap(errors.ErrInput, "usage: deposit <path to abci.db> <lease id>")
		}
		kv, err := app.CommitKVStore(args[0])
		if err != nil {
			return err
		}
		d, err := app.LookupDeposit(app.InlineApp(kv, e.logger, false), args[1])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}},
	"testgen": {"write example objects in JSON and protobuf encoding", func(_ env, args []string) error {
		return commands.TestGenCmd(app.Examples(), args)
	}},
	"version": {"print the version", func(env, []string) error {
		fmt.Println(weave.Version())
		return nil
	}},
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "leased: lease security deposit escrow\n\nusage: leased [flags] <command> [args]\n\n")
	names := make([]string, 0, len(commandSet))
	for name := range commandSet {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-9s %s\n", name, commandSet[name].help)
	}
	fmt.Fprintln(out)
	flag.PrintDefaults()
}

func main() {
	home := flag.String("home", filepath.Join(os.ExpandEnv("$HOME"), ".leased"), "directory to store files under")
	level := flag.String("log_level", "info", "minimal log level: debug, info, error or none")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commandSet[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	logger, err := newLogger(*level)
	if err == nil {
		err = cmd.run(env{home: *home, logger: logger}, flag.Args()[1:])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) (log.Logger, error) {
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "leased")
	return log.NewFilter(logger, allow), nil
}
