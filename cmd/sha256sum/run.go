package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"

	sha256 "github.com/Giulio2002/faster_sha256"
	"github.com/Giulio2002/faster_sha256/internal/compare"
	"github.com/Giulio2002/faster_sha256/internal/config"
	"github.com/Giulio2002/faster_sha256/internal/hexdigest"
	"github.com/Giulio2002/faster_sha256/internal/lol"
)

type DemoCmd struct{}

type SumCmd struct {
	Files []string `arg:"positional" help:"files to hash, - or nothing for standard input"`
}

type CompareCmd struct {
	Text string `arg:"positional" help:"text to hash with both engines, defaults to the sample"`
}

type CheckCmd struct {
	SumFile string `arg:"positional,required" help:"file of '<hex>  <name>' lines to verify"`
}

type EnvCmd struct{}

type HelpEnvCmd struct{}

type runArgs struct {
	EnvFile string      `arg:"--env-file" help:"read configuration from a KEY=value file instead of the environment"`
	Demo    *DemoCmd    `arg:"subcommand:demo" help:"hash the sample string (the default)"`
	Sum     *SumCmd     `arg:"subcommand:sum" help:"print the digest of each file"`
	Compare *CompareCmd `arg:"subcommand:compare" help:"hash text with this engine and crypto/sha256 and compare"`
	Check   *CheckCmd   `arg:"subcommand:check" help:"verify files against a checksum list"`
	Env     *EnvCmd     `arg:"subcommand:env" help:"print the configuration as a shell script"`
	HelpEnv *HelpEnvCmd `arg:"subcommand:help-env" help:"list the environment variables"`
}

func (runArgs) Description() string {
	return "pure-Go SHA-256 (FIPS 180-4) digests"
}

func run(argv []string, stdin io.Reader, stdout io.Writer) (err error) {
	var a runArgs
	var p *arg.Parser
	if p, err = arg.NewParser(arg.Config{Program: "sha256sum", IgnoreEnv: true}, &a); err != nil {
		return
	}
	if err = p.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(stdout)
			return nil
		}
		p.WriteUsage(stdout)
		return fmt.Errorf("parsing arguments: %w", err)
	}
	var cfg *config.C
	if cfg, err = loadConfig(a.EnvFile); err != nil {
		return
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.T.S(cfg)
	switch {
	case a.Sum != nil:
		return sum(cfg, a.Sum.Files, stdin, stdout)
	case a.Compare != nil:
		text := a.Compare.Text
		if text == "" {
			text = cfg.Sample
		}
		return compareText(text, stdout)
	case a.Check != nil:
		return check(cfg, a.Check.SumFile, stdin, stdout)
	case a.Env != nil:
		config.PrintEnv(*cfg, stdout)
		return nil
	case a.HelpEnv != nil:
		config.Usage(stdout)
		return nil
	default:
		return demo(cfg, stdout)
	}
}

func loadConfig(envFile string) (*config.C, error) {
	if envFile == "" {
		return config.Load(nil)
	}
	e, err := config.ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	return config.Load(e)
}

func demo(cfg *config.C, stdout io.Writer) (err error) {
	d := sha256.Sum256([]byte(cfg.Sample))
	_, err = fmt.Fprintf(stdout, "SHA-256 hash of '%s': %s\n", cfg.Sample, hexdigest.Format(d))
	return
}

func compareText(text string, stdout io.Writer) (err error) {
	r := compare.Run([]byte(text))
	log.D.F("reference hardware acceleration: %t", r.Accelerated)
	if _, err = io.WriteString(stdout, r.String()); err != nil {
		return
	}
	if !r.Match {
		return errorf.E("engine and reference disagree on %q", text)
	}
	return
}

// hashReader streams r through a Hasher in chunks of bufSize bytes.
func hashReader(r io.Reader, bufSize int) (d [sha256.Size]byte, err error) {
	h := sha256.New()
	if _, err = io.CopyBuffer(h, r, make([]byte, bufSize)); err != nil {
		return
	}
	return h.Sum256(), nil
}

// hashFile hashes the named file, or stdin when name is "-".
func hashFile(name string, stdin io.Reader, bufSize int) (d [sha256.Size]byte, err error) {
	if name == "-" {
		if d, err = hashReader(stdin, bufSize); err != nil {
			return d, fmt.Errorf("hashing standard input: %w", err)
		}
		return
	}
	var f *os.File
	if f, err = os.Open(name); err != nil {
		return d, fmt.Errorf("opening %s for hashing: %w", name, err)
	}
	defer f.Close()
	if d, err = hashReader(f, bufSize); err != nil {
		return d, fmt.Errorf("hashing %s: %w", name, err)
	}
	return
}

func sum(cfg *config.C, files []string, stdin io.Reader, stdout io.Writer) (err error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var failed int
	for _, name := range files {
		d, herr := hashFile(name, stdin, cfg.BufferSize)
		if chk.E(herr) {
			failed++
			continue
		}
		if _, err = fmt.Fprintf(stdout, "%s  %s\n", hexdigest.Format(d), name); err != nil {
			return
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return
}

// parseSumLine splits a "<hex>  <name>" line. A '*' binary-mode marker before
// the name is accepted.
func parseSumLine(line string) (d [sha256.Size]byte, name string, err error) {
	digest, rest, found := strings.Cut(line, " ")
	if !found {
		return d, "", fmt.Errorf("missing file name in %q", line)
	}
	name = strings.TrimPrefix(strings.TrimPrefix(rest, " "), "*")
	if name == "" {
		return d, "", fmt.Errorf("missing file name in %q", line)
	}
	if d, err = hexdigest.Parse(digest); err != nil {
		return d, "", err
	}
	return
}

func check(cfg *config.C, sumFile string, stdin io.Reader, stdout io.Writer) (err error) {
	var f *os.File
	if f, err = os.Open(sumFile); err != nil {
		return fmt.Errorf("opening checksum list: %w", err)
	}
	defer f.Close()
	var failed, malformed, total int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		want, name, perr := parseSumLine(line)
		if chk.W(perr) {
			malformed++
			continue
		}
		total++
		got, herr := hashFile(name, stdin, cfg.BufferSize)
		switch {
		case chk.E(herr):
			failed++
			_, err = fmt.Fprintf(stdout, "%s: FAILED open or read\n", name)
		case got != want:
			failed++
			_, err = fmt.Fprintf(stdout, "%s: FAILED\n", name)
		default:
			_, err = fmt.Fprintf(stdout, "%s: OK\n", name)
		}
		if err != nil {
			return
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("reading checksum list: %w", err)
	}
	if malformed > 0 {
		log.W.F("%d improperly formatted checksum lines", malformed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d computed checksums did not match", failed, total)
	}
	if total == 0 {
		return fmt.Errorf("no properly formatted checksum lines found in %s", sumFile)
	}
	return
}
