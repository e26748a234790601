package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MikeSquared-Agency/replymate/internal/compositor"
)

type Config struct {
	InputPath  string
	Tone       string
	Goal       string
	Length     string
	Boundaries string
	Followups  bool
	Question   bool
	ExportPath string
	Local      bool
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("missing -in")
	}
	switch compositor.Length(c.Length) {
	case compositor.LengthShort, compositor.LengthMedium, compositor.LengthLong:
	default:
		return fmt.Errorf("invalid -length %q (want short, medium or long)", c.Length)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		InputPath: "-",
		Tone:      string(compositor.DefaultTone),
		Goal:      string(compositor.DefaultGoal),
		Length:    string(compositor.DefaultLength),
		Followups: true,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()

	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "Transcript file to read (- for stdin)")
	fs.StringVar(&cfg.Tone, "tone", cfg.Tone, "Reply tone: neutral, warm, confident, apologetic, funny")
	fs.StringVar(&cfg.Goal, "goal", cfg.Goal, "Reply goal, e.g. \"Set boundaries\"")
	fs.StringVar(&cfg.Length, "length", cfg.Length, "Reply length: short, medium, long")
	fs.StringVar(&cfg.Boundaries, "boundaries", "", "Personal boundaries to include in the reply")
	fs.BoolVar(&cfg.Followups, "followups", cfg.Followups, "Ask for follow-ups at the end of the reply")
	fs.BoolVar(&cfg.Question, "question", false, "Append a clarifying question to the reply")
	fs.StringVar(&cfg.ExportPath, "export", "", "Also write the analysis document to this path")
	fs.BoolVar(&cfg.Local, "local", false, "Skip configured generators and compose locally")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) request(transcript string) compositor.Request {
	return compositor.Request{
		Transcript:   transcript,
		Tone:         compositor.Tone(c.Tone),
		Goal:         compositor.Goal(c.Goal),
		Length:       compositor.Length(c.Length),
		Boundaries:   c.Boundaries,
		AskFollowups: c.Followups,
	}.WithDefaults()
}
