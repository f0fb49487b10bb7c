// Package messages enumerates every message the plugin displays and maps each
// one to its fixed path in the language file.
package messages

import (
	"strings"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
)

// Message identifies one translatable line.
type Message int

const (
	NpcAddCommandDone Message = iota
	NpcAddCommandFailed
	NpcAddCooldownDone
	NpcAddPriceDone
	NpcAddDelayDone
	NpcAddPermissionDone
	NpcRemovePermissionDone
	NpcAddSoundDone
	NpcRemoveSoundDone
	ListCommandsCounterRight
	ListCommandsCounterLeft
	ListCooldown
	ListPrice
	ListTooltip
	RemoveCommandDone
	EditCommandDone
	ReloadDone

	NoNpcSelected
	InvalidPermission
	InvalidArguments
	InvalidCooldown
	InvalidPrice
	InvalidNumber
	NoCommands
	OnCooldown
	OnCooldownPermanent
	NotEnoughMoney
	NoPermission

	HelpVersion
	HelpInfo
	HelpFull
	HelpExample
	HelpDescriptionAdd
	HelpDescriptionCooldown
	HelpDescriptionPrice
	HelpDescriptionList
	HelpDescriptionEdit
	HelpDescriptionRemove
	HelpDescriptionReload

	PayConfirm
	PayCanceled
	PayCompleted

	NewVersion
	DownloadAt
	StartupLanguage

	messageCount
)

type entry struct {
	name string
	path entities.FlatKey
}

var table = [messageCount]entry{
	NpcAddCommandDone:        {"NPC_ADD_COMMAND_DONE", "messages.commands.npc-add-command-done"},
	NpcAddCommandFailed:      {"NPC_ADD_COMMAND_FAILED", "messages.commands.npc-add-command-failed"},
	NpcAddCooldownDone:       {"NPC_ADD_COOLDOWN_DONE", "messages.commands.npc-add-cooldown-done"},
	NpcAddPriceDone:          {"NPC_ADD_PRICE_DONE", "messages.commands.npc-add-price-done"},
	NpcAddDelayDone:          {"NPC_ADD_DELAY_DONE", "messages.commands.npc-add-delay-done"},
	NpcAddPermissionDone:     {"NPC_ADD_PERMISSION_DONE", "messages.commands.npc-add-permission-done"},
	NpcRemovePermissionDone:  {"NPC_REMOVE_PERMISSION_DONE", "messages.commands.npc-remove-permission-done"},
	NpcAddSoundDone:          {"NPC_ADD_SOUND_DONE", "messages.commands.npc-add-sound-done"},
	NpcRemoveSoundDone:       {"NPC_REMOVE_SOUND_DONE", "messages.commands.npc-remove-sound-done"},
	ListCommandsCounterRight: {"LIST_COMMANDS_COUNTER_RIGHT", "messages.commands.list-commands-counter-right"},
	ListCommandsCounterLeft:  {"LIST_COMMANDS_COUNTER_LEFT", "messages.commands.list-commands-counter-left"},
	ListCooldown:             {"LIST_COOLDOWN", "messages.commands.list-cooldown"},
	ListPrice:                {"LIST_PRICE", "messages.commands.list-price"},
	ListTooltip:              {"LIST_TOOLTIP", "messages.commands.list-tooltip"},
	RemoveCommandDone:        {"REMOVE_COMMAND_DONE", "messages.commands.remove-command-done"},
	EditCommandDone:          {"EDIT_COMMAND_DONE", "messages.commands.edit-command-done"},
	ReloadDone:               {"RELOAD_DONE", "messages.commands.reload-done"},

	NoNpcSelected:       {"NO_NPC_SELECTED", "messages.warnings.no-npc-selected"},
	InvalidPermission:   {"INVALID_PERMISSION", "messages.warnings.invalid-permission"},
	InvalidArguments:    {"INVALID_ARGUMENTS", "messages.warnings.invalid-arguments"},
	InvalidCooldown:     {"INVALID_COOLDOWN", "messages.warnings.invalid-cooldown"},
	InvalidPrice:        {"INVALID_PRICE", "messages.warnings.invalid-price"},
	InvalidNumber:       {"INVALID_NUMBER", "messages.warnings.invalid-number"},
	NoCommands:          {"NO_COMMANDS", "messages.warnings.no-commands"},
	OnCooldown:          {"ON_COOLDOWN", "messages.warnings.on-cooldown"},
	OnCooldownPermanent: {"ON_COOLDOWN_PERMANENT", "messages.warnings.on-cooldown-permanent"},
	NotEnoughMoney:      {"NOT_ENOUGH_MONEY", "messages.warnings.not-enough-money"},
	NoPermission:        {"NO_PERMISSION", "messages.warnings.no-permission"},

	HelpVersion:             {"HELP_VERSION", "messages.help.version"},
	HelpInfo:                {"HELP_INFO", "messages.help.info"},
	HelpFull:                {"HELP_FULL", "messages.help.full"},
	HelpExample:             {"HELP_EXAMPLE", "messages.help.example"},
	HelpDescriptionAdd:      {"HELP_DESCRIPTION_ADD", "messages.help.description-add"},
	HelpDescriptionCooldown: {"HELP_DESCRIPTION_COOLDOWN", "messages.help.description-cooldown"},
	HelpDescriptionPrice:    {"HELP_DESCRIPTION_PRICE", "messages.help.description-price"},
	HelpDescriptionList:     {"HELP_DESCRIPTION_LIST", "messages.help.description-list"},
	HelpDescriptionEdit:     {"HELP_DESCRIPTION_EDIT", "messages.help.description-edit"},
	HelpDescriptionRemove:   {"HELP_DESCRIPTION_REMOVE", "messages.help.description-remove"},
	HelpDescriptionReload:   {"HELP_DESCRIPTION_RELOAD", "messages.help.description-reload"},

	PayConfirm:   {"PAY_CONFIRM", "messages.payments.confirm"},
	PayCanceled:  {"PAY_CANCELED", "messages.payments.canceled"},
	PayCompleted: {"PAY_COMPLETED", "messages.payments.completed"},

	NewVersion:      {"NEW_VERSION", "messages.console.new-version"},
	DownloadAt:      {"DOWNLOAD_AT", "messages.console.download-at"},
	StartupLanguage: {"STARTUP_LANGUAGE", "messages.console.using-language"},
}

// Path returns the flat key of m, or "" for values outside the enumeration.
func (m Message) Path() entities.FlatKey {
	if !m.valid() {
		return ""
	}
	return table[m].path
}

// String returns the constant name, e.g. "NO_NPC_SELECTED".
func (m Message) String() string {
	if !m.valid() {
		return "UNKNOWN"
	}
	return table[m].name
}

func (m Message) valid() bool {
	return m >= 0 && m < messageCount
}

// All returns every message in declaration order.
func All() []Message {
	all := make([]Message, messageCount)
	for i := range all {
		all[i] = Message(i)
	}
	return all
}

// Parse resolves a constant name, ignoring case and accepting '-' for '_'.
func Parse(name string) (Message, bool) {
	name = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for i, e := range table {
		if e.name == name {
			return Message(i), true
		}
	}
	return 0, false
}

// ByPath finds the message mapped to key.
func ByPath(key entities.FlatKey) (Message, bool) {
	if _, _, ok := key.Split(); !ok {
		return 0, false
	}
	for i, e := range table {
		if e.path == key {
			return Message(i), true
		}
	}
	return 0, false
}
