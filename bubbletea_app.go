// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

type focusArea int

const (
	focusMenu focusArea = iota
	focusInput
	focusOutput
)

type menuAction int

const (
	actionInsert menuAction = iota + 1
	actionGenerate
	actionPrint
	actionDelete
	actionSearch
	actionPrune
	actionQuit
)

// menuItem is one entry of the seven-item menu.
type menuItem struct {
	action menuAction
	title  string
	desc   string
	prompt string // non-empty when the action needs a number
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return fmt.Sprintf("%d. %s", i.action, i.title) }
func (i menuItem) Description() string { return i.desc }

var menuItems = []menuItem{
	{actionInsert, "Insert a key", "add one key to the tree", "Key to insert"},
	{actionGenerate, "Generate random keys", "add unique random keys", "How many unique random keys"},
	{actionPrint, "Print the tree", "hierarchical view", ""},
	{actionDelete, "Delete a key", "remove one key from the tree", "Key to delete"},
	{actionSearch, "Search with step count", "breadth-first walk", "Key to search for"},
	{actionPrune, "Cyclic prune", "remove alternating nodes", ""},
	{actionQuit, "Quit", "leave avlprune", ""},
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	menu   list.Model
	input  textinput.Model
	output viewport.Model

	session *Session
	config  *Config

	focus   focusArea
	pending *menuItem
	status  string
	failed  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config) Model {
	items := make([]list.Item, len(menuItems))
	for i, item := range menuItems {
		items[i] = item
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.SetShowTitle(false)
	menu.SetShowHelp(false)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Pick an action that needs a number..."
	ti.CharLimit = 32
	ti.Width = 30

	output := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.Display.Wrap),
	)

	m := Model{
		menu:            menu,
		input:           ti,
		output:          output,
		session:         session,
		config:          config,
		focus:           focusMenu,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.showHelp()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.focus == focusInput {
				m.cancelInput()
				return m, nil
			}
			return m, tea.Quit
		case "f1":
			m.showHelp()
			return m, nil
		case "ctrl+y":
			m.copyTree()
			return m, nil
		case "tab":
			switch m.focus {
			case focusMenu:
				m.focus = focusOutput
			case focusOutput:
				m.focus = focusMenu
			}
			return m, nil
		}

		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusOutput:
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		default:
			return m.updateMenu(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// digits jump straight to a menu entry, like typing a menu number
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(menuItems) {
		m.menu.Select(n - 1)
		return m.choose(menuItems[n-1])
	}

	if key == "enter" {
		if item, ok := m.menu.SelectedItem().(menuItem); ok {
			return m.choose(item)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" && m.pending != nil {
		item := *m.pending
		value := m.input.Value()
		m.cancelInput()
		m.run(item, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// choose either runs item right away or asks for its argument first.
func (m Model) choose(item menuItem) (tea.Model, tea.Cmd) {
	if item.action == actionQuit {
		return m, tea.Quit
	}
	if item.prompt == "" {
		m.run(item, "")
		return m, nil
	}

	m.pending = &item
	m.focus = focusInput
	m.input.Reset()
	m.input.Placeholder = item.prompt
	if item.action == actionGenerate {
		m.input.Placeholder = fmt.Sprintf("%s (default %d)", item.prompt, m.config.Generator.Count)
	}
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) cancelInput() {
	m.pending = nil
	m.input.Reset()
	m.input.Blur()
	m.input.Placeholder = "Pick an action that needs a number..."
	m.focus = focusMenu
}

// run performs item against the session and shows what it printed.
func (m *Model) run(item menuItem, arg string) {
	var buf bytes.Buffer
	m.session.SetOutput(&buf)

	err := m.perform(item, arg)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	m.setStatus(fmt.Sprintf("%s: done (%d keys, height %d)", item.title,
		m.session.Tree().Len(), m.session.Tree().Height()), false)
	m.output.SetContent(buf.String())
	m.output.GotoTop()
}

func (m *Model) perform(item menuItem, arg string) error {
	switch item.action {
	case actionInsert:
		key, err := parseKey(arg)
		if err != nil {
			return err
		}
		m.session.Insert(key)
	case actionGenerate:
		count := m.config.Generator.Count
		if strings.TrimSpace(arg) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil || n <= 0 {
				return errors.Wrapf(ErrInvalidCount, "%q", arg)
			}
			count = n
		}
		if err := m.session.Generate(count); err != nil {
			return err
		}
	case actionPrint:
		m.session.Print()
	case actionDelete:
		key, err := parseKey(arg)
		if err != nil {
			return err
		}
		m.session.Delete(key)
	case actionSearch:
		key, err := parseKey(arg)
		if err != nil {
			return err
		}
		m.session.Search(key)
	case actionPrune:
		m.session.Prune()
	default:
		return errors.Wrapf(ErrUnknownCommand, "menu action %d", item.action)
	}
	return nil
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func (m *Model) showHelp() {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(menuHelpMarkdown); err == nil {
			m.output.SetContent(rendered)
			return
		}
	}
	m.output.SetContent(menuHelpMarkdown)
}

func (m *Model) copyTree() {
	if err := clipboard.WriteAll(m.session.Render()); err != nil {
		m.setStatus(fmt.Sprintf("Failed to copy tree: %v", err), true)
		return
	}
	m.setStatus("📋 Tree copied to clipboard.", false)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	menuHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	menuStyle, menuTitle := m.styles.BorderBlurred, " 🌳 Menu "
	if m.focus == focusMenu {
		menuStyle, menuTitle = m.styles.BorderFocused, " 🌳 Menu (Active) "
	}
	menuBox := menuStyle.
		Width(leftWidth).
		Height(menuHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(menuTitle),
			m.menu.View(),
		))

	inputStyle, inputTitle := m.styles.BorderBlurred, " 🔢 Input "
	if m.focus == focusInput {
		inputStyle, inputTitle = m.styles.BorderFocused, " 🔢 Input (Active) "
	}
	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.input.View(),
		))

	outputStyle, outputTitle := m.styles.BorderBlurred, " 📄 Output "
	if m.focus == focusOutput {
		outputStyle, outputTitle = m.styles.BorderFocused, " 📄 Output (Active) "
	}
	outputBox := outputStyle.
		Width(rightWidth).
		Height(menuHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(outputTitle),
			m.output.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, menuBox, inputBox),
		outputBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	if m.width < 40 || m.height < 12 {
		return
	}
	inputHeight := 3
	menuHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 6
	m.menu.SetSize(leftWidth-2, menuHeight-2)
	m.output.Width = rightWidth - 2
	m.output.Height = menuHeight + inputHeight - 1
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.failed {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "1-7", "tab", "ctrl+y", "f1", "esc"}
	descs := []string{"run action", "pick item", "switch focus", "copy tree", "help", "cancel/quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(session, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
