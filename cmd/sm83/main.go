package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/thelolagemann/sm83/internal/config"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/emulator"
	"github.com/thelolagemann/sm83/pkg/log"
)

type (
	CLI struct {
		Config   string `help:"Configuration file." default:"sm83.toml" type:"path"`
		LogLevel string `name:"log-level" help:"Override the configured log level."`

		Powerup Powerup `cmd:"" help:"Print the power-up registers of a model."`
		Save    Save    `cmd:"" help:"Power up a model, apply assignments and write a snapshot."`
		Load    Load    `cmd:"" help:"Print the registers held in a snapshot."`
		Models  Models  `cmd:"" help:"List the supported models."`
	}

	Powerup struct {
		Model string `help:"${model_help}"`
	}

	Save struct {
		Model string   `help:"${model_help}"`
		Set   []string `help:"${set_help}" placeholder:"NAME=VALUE"`
		Path  string   `arg:"" optional:"" help:"Snapshot file. Defaults to a new file in the snapshot folder." type:"path"`
	}

	Load struct {
		Path string `arg:"" optional:"" help:"Snapshot file. Defaults to the newest in the snapshot folder." type:"path"`
	}

	Models struct{}
)

var vars = kong.Vars{
	"model_help": "Hardware model: GB (DMG), GBP (MGB), GBC (CGB) or SGB. Defaults to the configured model.",
	"set_help":   "Assign a register (a..l), pair (af, bc, de, hl), sp, pc or flag (zf, nf, hf, cf) after power up.",
}

// env is shared by every command.
type env struct {
	cfg config.Config
	log log.Logger
	out io.Writer
}

func (e *env) model(name string) (types.Model, error) {
	if name == "" {
		return e.cfg.Model, nil
	}
	return types.ParseModel(name)
}

func (e *env) snapshotOpts() []emulator.Opt {
	opts := []emulator.Opt{emulator.WithLogger(e.log)}
	if e.cfg.Compression == config.NoCompression {
		return append(opts, emulator.WithoutCompression())
	}
	return append(opts, emulator.WithCompression(e.cfg.Compression))
}

func (p *Powerup) Run(e *env) error {
	m, err := e.model(p.Model)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "%s %s\n", m, cpu.PowerUp(m))
	return nil
}

func (s *Save) Run(e *env) error {
	m, err := e.model(s.Model)
	if err != nil {
		return err
	}

	regs := cpu.PowerUp(m)
	for _, a := range s.Set {
		if err := assign(&regs, a); err != nil {
			return err
		}
	}

	snap := &emulator.Snapshot{Model: m, Registers: regs}
	path := s.Path
	if path == "" {
		path, err = emulator.Save(e.cfg.SnapshotDir, snap, time.Now(), e.snapshotOpts()...)
	} else {
		err = emulator.SaveFile(path, snap, e.snapshotOpts()...)
	}
	if err != nil {
		return err
	}

	e.log.Infof("saved %s snapshot to %s", m, path)
	fmt.Fprintf(e.out, "%s %s\n", m, regs)
	return nil
}

func (l *Load) Run(e *env) error {
	var (
		snap *emulator.Snapshot
		err  error
	)
	path := l.Path
	if path == "" {
		snap, path, err = emulator.LoadLatest(e.cfg.SnapshotDir, e.snapshotOpts()...)
	} else {
		snap, err = emulator.LoadFile(path, e.snapshotOpts()...)
	}
	if err != nil {
		return err
	}

	e.log.Infof("loaded %s snapshot from %s", snap.Model, path)
	fmt.Fprintf(e.out, "%s %s\n", snap.Model, snap.Registers)
	return nil
}

func (Models) Run(e *env) error {
	for _, m := range types.Models {
		fmt.Fprintf(e.out, "%-4s A=%02X\n", m, cpu.PowerUp(m).A)
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sm83"),
		kong.Description("Inspect and snapshot the SM83 register file."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		vars)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	logger, err := log.NewWithLevel(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	return ctx.Run(&env{cfg: cfg, log: logger, out: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sm83:", err)
		os.Exit(1)
	}
}
