package commands

import (
	"fmt"
	"strings"
)

const (
	CommandDownload = "download"
	CommandHelp     = "help"
	CommandList     = "list"
	CommandUpload   = "upload"
)

type Usage struct {
	Args        string
	Description string
}

type Command struct {
	Name   string
	Usages []Usage
}

/*
Commands describes every command cloudphoto understands, in the order help
prints them.
*/
var Commands = []Command{
	{
		Name: CommandList,
		Usages: []Usage{
			{Args: "", Description: "Выводит список альбомов, которые присутствуют в облачном хранилище"},
			{Args: "-a album", Description: "Выводит список фотографий, которые относятся к альбому album"},
		},
	},
	{
		Name: CommandHelp,
		Usages: []Usage{
			{Args: "", Description: "Выводит эту вспомогательную информацию"},
		},
	},
	{
		Name: CommandUpload,
		Usages: []Usage{
			{Args: "-p path -a album", Description: "Отправляет все фотографии (без рекурсии) из каталога path в облачное хранилище и привязывает их к альбому album. Если альбома не существует, то создает новый альбом. Если каталога не существует, то выдает соответствующую ошибку"},
		},
	},
	{
		Name: CommandDownload,
		Usages: []Usage{
			{Args: "-p path -a album", Description: "Загружает из облачного хранилища все фотографии в каталог path, которые относятся к альбому album. Если альбома или каталога не существует, то выдает соответствующую ошибку"},
		},
	},
}

func FindCommand(name string) (Command, bool) {
	for _, command := range Commands {
		if command.Name == name {
			return command, true
		}
	}

	return Command{}, false
}

/*
HelpText renders the usage table. Each usage goes on its own tab-indented
line with descriptions aligned one space past the longest usage.
*/
func HelpText() string {
	var (
		b      strings.Builder
		indent int
	)

	type line struct {
		usage       string
		description string
	}

	lines := []line{}

	for _, command := range Commands {
		for _, usage := range command.Usages {
			full := fmt.Sprintf("%s %s", command.Name, usage.Args)
			indent = max(indent, len(full))
			lines = append(lines, line{usage: full, description: usage.Description})
		}
	}

	b.WriteString("CloudPhoto commands:\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "\t%s%s%s\n", l.usage, strings.Repeat(" ", indent-len(l.usage)+1), l.description)
	}

	return b.String()
}
