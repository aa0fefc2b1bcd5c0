package arguments

import (
	"log/slog"
)

const (
	DefaultCommand = "help"
	PathFlag       = "-p"
	AlbumFlag      = "-a"
)

type Arguments struct {
	Command string
	Path    string
	Album   string
}

/*
Parse reads the command and its parameters from the arguments that follow
the program name. The first argument is the command. The value after the
first -p or -a, wherever it appears, is the parameter. A flag at the very
end with nothing after it is ignored.
*/
func Parse(args []string) Arguments {
	result := Arguments{
		Command: DefaultCommand,
	}

	if len(args) == 0 {
		return result
	}

	result.Command = args[0]
	result.Path = flagValue(args, PathFlag)
	result.Album = flagValue(args, AlbumFlag)

	return result
}

func flagValue(args []string, flag string) string {
	for index, arg := range args {
		if arg != flag {
			continue
		}

		if index+1 >= len(args) {
			slog.Warn("flag has no value", "flag", flag)
			return ""
		}

		return args[index+1]
	}

	return ""
}
