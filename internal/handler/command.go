package handler

import (
	"regexp"
	"strconv"
	"strings"

	"englishbot/internal/domain"
)

// Command is the closed set of actions the bot understands
type Command int

const (
	CommandUnknown Command = iota
	CommandText
	CommandStart
	CommandHelp
	CommandQuiz
	CommandAdd
	CommandDelete
	CommandList
	CommandNextPage
	CommandPrevPage
	CommandStats
	CommandCancel
)

var commandNames = map[Command]string{
	CommandUnknown:  "unknown",
	CommandText:     "text",
	CommandStart:    "start",
	CommandHelp:     "help",
	CommandQuiz:     "quiz",
	CommandAdd:      "add",
	CommandDelete:   "delete",
	CommandList:     "list",
	CommandNextPage: "next_page",
	CommandPrevPage: "prev_page",
	CommandStats:    "stats",
	CommandCancel:   "cancel",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Menu button labels
const (
	labelQuiz   = "Викторина 🎮"
	labelAdd    = "Добавить слово ➕"
	labelDelete = "Удалить слово ➖"
	labelList   = "Список слов 📋"
	labelStats  = "Статистика 📊"
	labelCancel = "Отмена ❌"
)

var slashCommands = map[string]Command{
	"/start":  CommandStart,
	"/help":   CommandHelp,
	"/quiz":   CommandQuiz,
	"/add":    CommandAdd,
	"/delete": CommandDelete,
	"/list":   CommandList,
	"/next":   CommandNextPage,
	"/prev":   CommandPrevPage,
	"/stats":  CommandStats,
	"/cancel": CommandCancel,
}

var menuCommands = map[string]Command{
	labelQuiz:   CommandQuiz,
	labelAdd:    CommandAdd,
	labelDelete: CommandDelete,
	labelList:   CommandList,
	labelStats:  CommandStats,
	labelCancel: CommandCancel,
}

// ParseCommand maps an incoming message to a command and its arguments.
// Anything that is neither a menu label nor a slash command is CommandText
// with the trimmed text as arguments.
func ParseCommand(text string) (Command, string) {
	text = strings.TrimSpace(text)

	if cmd, ok := menuCommands[text]; ok {
		return cmd, ""
	}

	if strings.HasPrefix(text, "/") {
		name, args, _ := strings.Cut(text, " ")
		name = strings.ToLower(name)
		// "/list@my_bot" in group chats
		if i := strings.Index(name, "@"); i >= 0 {
			name = name[:i]
		}
		if cmd, ok := slashCommands[name]; ok {
			return cmd, strings.TrimSpace(args)
		}
		return CommandUnknown, ""
	}

	return CommandText, text
}

var pairSeparators = []string{" - ", " — ", " – ", "="}

// parsePair splits "/add" arguments into Russian and English parts.
// Accepted forms: "кот - cat", "кот=cat", "кот cat".
func parsePair(args string) (string, string, error) {
	for _, sep := range pairSeparators {
		if ru, en, ok := strings.Cut(args, sep); ok {
			ru, en = strings.TrimSpace(ru), strings.TrimSpace(en)
			if ru == "" || en == "" {
				return "", "", domain.ErrInvalidArgument
			}
			return ru, en, nil
		}
	}

	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", "", domain.ErrInvalidArgument
	}
	return fields[0], fields[1], nil
}

// Anchored at the end so the word text itself cannot inject an ID
var wordIDPattern = regexp.MustCompile(`\(ID: (\d+)\)$`)

// parseWordID accepts either a delete-keyboard label ("кот - cat (ID: 5)")
// or a bare number
func parseWordID(text string) (int64, error) {
	if m := wordIDPattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidArgument
	}
	return id, nil
}
