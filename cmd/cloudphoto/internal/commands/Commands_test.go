package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommand(t *testing.T) {
	for _, name := range []string{CommandList, CommandHelp, CommandUpload, CommandDownload} {
		command, ok := FindCommand(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, command.Name)
	}

	_, ok := FindCommand("delete")
	assert.False(t, ok)
}

func TestHelpText(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(HelpText(), "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "CloudPhoto commands:", lines[0])

	// The longest usage is "download -p path -a album", so every
	// description starts one space past it.
	descriptionColumn := len("\t") + len("download -p path -a album") + 1

	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "\t"), line)
		assert.Equal(t, byte(' '), line[descriptionColumn-1], line)
		assert.NotEqual(t, byte(' '), line[descriptionColumn], line)
	}

	assert.Equal(t, "\tlist -a album"+strings.Repeat(" ", 13)+"Выводит список фотографий, которые относятся к альбому album", lines[2])
	assert.Equal(t, "\tdownload -p path -a album Загружает из облачного хранилища все фотографии в каталог path, которые относятся к альбому album. Если альбома или каталога не существует, то выдает соответствующую ошибку", lines[5])
}
