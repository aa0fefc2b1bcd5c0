package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/arguments"
	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/commands"
	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/configuration"
	"github.com/adampresley/cloudphoto/pkg/services"
	"github.com/go-git/go-billy/v5/osfs"
)

var (
	Version string = "development"
	appName string = "cloudphoto"

	config configuration.Config

	/* Services */
	albumService          services.AlbumServicer
	photoDirectoryService services.PhotoDirectoryServicer
)

func main() {
	os.Exit(run(os.Stdout))
}

func run(stdout io.Writer) int {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("awsEndpointUrl", config.AwsEndpointUrl),
		slog.String("awsRegion", config.AwsRegion),
		slog.String("storageBackend", config.StorageBackend),
		slog.Int("maxTransferWorkers", config.MaxTransferWorkers),
	)

	if err = config.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := arguments.Parse(commandLineArgs())

	/*
	 * Setup services. The object store is built on first use, so help and
	 * argument errors never depend on the storage configuration.
	 */
	photoDirectoryService = services.NewPhotoDirectoryService(services.PhotoDirectoryServiceConfig{
		FS: osfs.New("/"),
	})

	albumService = newStorageAlbumService(&config, photoDirectoryService)

	dispatcher := commands.NewDispatcher(commands.DispatcherConfig{
		AlbumService:          albumService,
		Output:                stdout,
		PhotoDirectoryService: photoDirectoryService,
	})

	if err = dispatcher.Execute(ctx, args); err != nil {
		slog.Debug("command failed", "command", args.Command, "error", err)
		return 1
	}

	return 0
}

/*
commandLineArgs returns the arguments left after configuration flags. When
the configuration loader parsed the command line, anything after the first
non-flag argument is untouched, so the command and its -p/-a parameters
survive as flag.Args().
*/
func commandLineArgs() []string {
	if flag.Parsed() {
		return flag.Args()
	}

	return os.Args[1:]
}
