package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-llm-sdk/pkg/openai"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// API
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Context
	ctx    context.Context
	logger *slog.Logger
	tracer trace.Tracer
	client *openai.Client
}

type OpenAI struct {
	OpenAIKey      string `env:"OPENAI_API_KEY" help:"OpenAI API Key"`
	OpenAIEndpoint string `env:"OPENAI_BASE_URL" help:"OpenAI API endpoint" default:"${endpoint}"`
}

type CLI struct {
	Globals

	// Commands
	Chat       ChatCmd       `cmd:"" help:"Send a chat completion"`
	Image      ImageCmd      `cmd:"" help:"Generate images from a prompt"`
	Speech     SpeechCmd     `cmd:"" help:"Convert text to speech"`
	Transcribe TranscribeCmd `cmd:"" help:"Transcribe an audio file"`
	Translate  TranslateCmd  `cmd:"" help:"Translate an audio file into English"`
	Embed      EmbedCmd      `cmd:"" help:"Return embeddings for text"`
	Version    VersionCmd    `cmd:"" help:"Print the version"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load a .env file, if there is one
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Error loading .env file", "error", err)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"endpoint":         openai.DefaultEndpoint,
			"chat_model":       schema.DefaultChatModel.String(),
			"image_size":       schema.DefaultImageSize.String(),
			"image_quality":    schema.DefaultImageQuality.String(),
			"image_style":      schema.DefaultImageStyle.String(),
			"speech_model":     schema.DefaultSpeechModel.String(),
			"speech_voice":     schema.DefaultSpeechVoice.String(),
			"speech_format":    schema.DefaultSpeechResponseFormat.String(),
			"whisper_format":   schema.DefaultWhisperResponseFormat.String(),
			"embedding_format": schema.DefaultEmbeddingEncodingFormat.String(),
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Logging and tracing
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	cli.Globals.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cli.Globals.tracer = otel.Tracer(execName())

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Create the client
	c, err := openai.New(cli.OpenAIEndpoint, cli.OpenAIKey,
		openai.WithClientOpts(clientopts...),
		openai.WithLogger(cli.Globals.logger),
		openai.WithTracer(cli.Globals.tracer),
	)
	cmd.FatalIfErrorf(err)
	cli.Globals.client = c

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
