package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/sunken-cathedral/pkg/command"
	"github.com/jwebster45206/sunken-cathedral/pkg/difficulty"
	"github.com/jwebster45206/sunken-cathedral/pkg/player"
	"github.com/jwebster45206/sunken-cathedral/pkg/savegame"
	"github.com/jwebster45206/sunken-cathedral/pkg/state"
	"github.com/jwebster45206/sunken-cathedral/pkg/storage"
	"github.com/jwebster45206/sunken-cathedral/pkg/world"
)

const (
	GameTitle       = "THE SUNKEN CATHEDRAL"
	PlaceHolderText = "verb noun"

	oilGaugeWidth  = 20
	messageSeconds = 6
	storeTimeout   = 3 * time.Second
	ambientChance  = 18 // one ambient whisper per N successful moves, on average
)

type uiMode int

const (
	modeIntro uiMode = iota
	modePlay
	modeCommand
	modePager
	modeMenu
	modeQuit
)

type menuKind int

const (
	menuSettings menuKind = iota
	menuSave
	menuLoad
)

// GameUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	gs    *state.GameState
	store storage.Store
	log   *slog.Logger

	mode     uiMode
	prevMode uiMode

	input textinput.Model
	pager viewport.Model

	// Menu state, valid while mode == modeMenu
	menu         menuKind
	menuCursor   int
	slots        []storage.SlotInfo
	loadingSlots bool

	// Intro state
	introCursor int
	hasAutosave bool

	// Transient message line. msgSeq guards the expiry tick so a
	// newer message is not cleared by an older timer.
	message string
	msgErr  bool
	msgSeq  int

	width  int
	height int
	ready  bool
}

type autosaveDoneMsg struct{ err error }

type slotsLoadedMsg struct {
	slots []storage.SlotInfo
	err   error
}

type saveDoneMsg struct {
	slot int
	err  error
}

type loadDoneMsg struct {
	slot int
	sd   *savegame.SaveData
	err  error
}

type clearMessageMsg struct{ seq int }

var (
	mapPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // spectral blue
			Bold(true)

	roomNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")). // green
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // pale gold

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")). // lantern yellow
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // amber

	spiritStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")) // pale cyan

	fontStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("81")).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warningStyles = map[player.WarningLevel]lipgloss.Style{
		player.WarningGood:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		player.WarningMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		player.WarningLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		player.WarningCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

var titleCaser = cases.Title(language.English)

func NewGameUI(gs *state.GameState, store storage.Store, log *slog.Logger, hasAutosave bool) GameUI {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 60
	ti.Width = 50

	return GameUI{
		gs:          gs,
		store:       store,
		log:         log,
		mode:        modeIntro,
		input:       ti,
		pager:       viewport.New(60, 20),
		hasAutosave: hasAutosave,
	}
}

func (m GameUI) Init() tea.Cmd {
	return nil
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages from commands and timers apply in every mode.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pager.Width = min(msg.Width-8, 76)
		m.pager.Height = msg.Height - 8
		m.ready = true
		return m, nil

	case clearMessageMsg:
		if msg.seq == m.msgSeq {
			m.message = ""
		}
		return m, nil

	case autosaveDoneMsg:
		if msg.err != nil {
			m.log.Warn("Autosave failed", "error", msg.err)
		}
		return m, nil

	case slotsLoadedMsg:
		m.loadingSlots = false
		if msg.err != nil {
			m.log.Error("Failed to list save slots", "error", msg.err)
			m.mode = modePlay
			return m, m.setError("Could not read save slots: " + msg.err.Error())
		}
		m.slots = msg.slots
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.log.Error("Save failed", "slot", msg.slot, "error", msg.err)
			return m, m.setError("Save failed: " + msg.err.Error())
		}
		return m, m.setMessage(fmt.Sprintf("Saved to slot %d.", msg.slot))

	case loadDoneMsg:
		return m.applyLoaded(msg)
	}

	switch m.mode {
	case modeIntro:
		return m.updateIntro(msg)
	case modeQuit:
		return m.updateQuit(msg)
	case modeMenu:
		return m.updateMenu(msg)
	case modePager:
		return m.updatePager(msg)
	case modeCommand:
		return m.updateCommand(msg)
	default:
		return m.updatePlay(msg)
	}
}

func (m GameUI) updateIntro(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	options := m.introOptions()
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		if m.introCursor > 0 {
			m.introCursor--
		}
	case tea.KeyDown:
		if m.introCursor < len(options)-1 {
			m.introCursor++
		}
	case tea.KeyEnter:
		if options[m.introCursor] == "Continue" {
			m.mode = modePlay
			return m, m.loadSlot(storage.AutoSlot)
		}
		m.mode = modePlay
		if room := m.gs.World.CurrentRoom(); room != nil {
			return m, m.setMessage(room.Description)
		}
	}
	return m, nil
}

func (m GameUI) introOptions() []string {
	if m.hasAutosave {
		return []string{"Continue", "New Game"}
	}
	return []string{"New Game"}
}

func (m GameUI) updateQuit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEnter:
		return m, tea.Quit
	default:
		switch keyMsg.String() {
		case "y", "Y":
			return m, tea.Quit
		case "n", "N", "esc":
			m.mode = m.prevMode
		}
	}
	return m, nil
}

func (m GameUI) updatePager(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			m.mode = modePlay
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

func (m GameUI) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.loadingSlots {
		if keyMsg.Type == tea.KeyEsc || keyMsg.Type == tea.KeyCtrlC {
			m.mode = modePlay
		}
		return m, nil
	}

	size := m.menuSize()
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.mode = modePlay
	case tea.KeyUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case tea.KeyDown:
		if m.menuCursor < size-1 {
			m.menuCursor++
		}
	case tea.KeyEnter:
		return m.selectMenuItem()
	}
	return m, nil
}

func (m GameUI) menuSize() int {
	if m.menu == menuSettings {
		return len(difficulty.Levels())
	}
	return len(m.slots)
}

func (m GameUI) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.menu {
	case menuSettings:
		level := difficulty.Levels()[m.menuCursor]
		m.gs.Difficulty.SetLevel(level)
		m.mode = modePlay
		name := difficulty.GetSettings(level).Name
		return m, tea.Batch(m.setMessage("Difficulty set to "+name+"."), m.autosave())

	case menuSave:
		slot := m.slots[m.menuCursor].Slot
		sd := savegame.Snapshot(m.gs)
		m.mode = modePlay
		return m, m.saveSlot(slot, sd)

	default: // menuLoad
		info := m.slots[m.menuCursor]
		if !info.Exists {
			return m, m.setMessage(fmt.Sprintf("Slot %d is empty.", info.Slot))
		}
		m.mode = modePlay
		return m, m.loadSlot(info.Slot)
	}
}

func (m GameUI) updateCommand(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.prevMode = modeCommand
		m.mode = modeQuit
		return m, nil
	case tea.KeyEsc:
		m.input.Reset()
		m.input.Blur()
		m.mode = modePlay
		return m, nil
	case tea.KeyCtrlY:
		m.copyMessage()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.Blur()
		m.mode = modePlay
		if text == "" {
			return m, nil
		}
		return m.executeCommand(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GameUI) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.prevMode = modePlay
		m.mode = modeQuit
		return m, nil
	case tea.KeyCtrlY:
		m.copyMessage()
		return m, nil
	case tea.KeyUp:
		return m.movePlayer(world.North)
	case tea.KeyDown:
		return m.movePlayer(world.South)
	case tea.KeyLeft:
		return m.movePlayer(world.West)
	case tea.KeyRight:
		return m.movePlayer(world.East)
	case tea.KeyRunes:
		// Any typed character opens the command line, seeded with it.
		m.input.Reset()
		m.input.SetValue(string(keyMsg.Runes))
		m.input.CursorEnd()
		m.input.Focus()
		m.mode = modeCommand
		return m, textinput.Blink
	}
	return m, nil
}

// movePlayer applies one arrow-key step: walkability, oil, transitions
// and the rune underfoot.
func (m GameUI) movePlayer(dir world.Direction) (tea.Model, tea.Cmd) {
	room := m.gs.World.CurrentRoom()
	if room == nil {
		return m, nil
	}

	offset := dir.Offset()
	pos := m.gs.Player.Position()
	target := world.Position{Row: pos.Row + offset.Row, Col: pos.Col + offset.Col}

	if !m.gs.Player.TryMove(dir, m.gs.World) {
		if room.CharacterAt(target) == world.GlyphDeepWater && m.gs.Player.Depleted() {
			return m, m.setMessage("Your lantern is dark. The deep water would claim you.")
		}
		return m, nil
	}

	hadOil := !m.gs.Player.Depleted()
	m.gs.Player.ConsumeOil(player.ActionMove, m.gs.Difficulty.CurrentSettings())
	m.gs.RecordMove()

	cmds := []tea.Cmd{m.autosave()}

	newRoom := m.gs.World.CurrentRoom()
	newPos := m.gs.Player.Position()
	switch {
	case newRoom != nil && newRoom.ID != room.ID:
		cmds = append(cmds, m.setMessage(newRoom.Description))
	case hadOil && m.gs.Player.Depleted():
		cmds = append(cmds, m.setMessage("Your lantern gutters and dies. Find a font, and pray."))
	case newRoom != nil:
		if text, ok := newRoom.RuneMessages[newPos]; ok {
			cmds = append(cmds, m.setMessage(text))
		} else if len(newRoom.AmbientMessages) > 0 && rand.Intn(ambientChance) == 0 {
			cmds = append(cmds, m.setMessage(newRoom.AmbientMessages[rand.Intn(len(newRoom.AmbientMessages))]))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m GameUI) executeCommand(text string) (tea.Model, tea.Cmd) {
	verb, noun := command.Parse(text)
	res := command.Execute(verb, noun, m.gs)

	if command.ConsumesOil(verb) {
		m.gs.Player.ConsumeOil(player.ActionCommand, m.gs.Difficulty.CurrentSettings())
		m.gs.RecordMove()
	}

	var cmds []tea.Cmd
	if res.Message != "" {
		cmds = append(cmds, m.setMessage(res.Message))
	}

	switch res.UI {
	case command.UIHelp:
		m.openPager("HELP", helpText)
	case command.UIScroll:
		m.openPager("THE WORN SCROLL", scrollText)
	case command.UISettingsMenu:
		m.mode = modeMenu
		m.menu = menuSettings
		m.menuCursor = 0
		for i, level := range difficulty.Levels() {
			if level == m.gs.Difficulty.Current() {
				m.menuCursor = i
			}
		}
	case command.UISaveMenu:
		m.mode = modeMenu
		m.menu = menuSave
		m.menuCursor = 0
		m.loadingSlots = true
		cmds = append(cmds, m.fetchSlots())
	case command.UILoadMenu:
		m.mode = modeMenu
		m.menu = menuLoad
		m.menuCursor = 0
		m.loadingSlots = true
		cmds = append(cmds, m.fetchSlots())
	}

	// Oil was spent even when the command failed or opened the
	// scroll, so persist.
	if command.ConsumesOil(verb) {
		cmds = append(cmds, m.autosave())
	}
	return m, tea.Batch(cmds...)
}

func (m *GameUI) openPager(title string, lines []string) {
	var content strings.Builder
	content.WriteString(titleStyle.Render(title) + "\n\n")
	for _, line := range lines {
		content.WriteString(wordwrap.String(line, m.pager.Width-2) + "\n")
	}
	content.WriteString("\n" + promptStyle.Render("↑/↓ to scroll, Esc to return"))
	m.pager.SetContent(content.String())
	m.pager.GotoTop()
	m.mode = modePager
}

func (m *GameUI) setMessage(text string) tea.Cmd {
	m.message = text
	m.msgErr = false
	m.msgSeq = m.msgSeq + 1
	seq := m.msgSeq
	return tea.Tick(messageSeconds*time.Second, func(time.Time) tea.Msg {
		return clearMessageMsg{seq}
	})
}

func (m *GameUI) setError(text string) tea.Cmd {
	cmd := m.setMessage(text)
	m.msgErr = true
	return cmd
}

func (m GameUI) copyMessage() {
	if m.message == "" {
		return
	}
	if err := clipboard.WriteAll(m.message); err != nil {
		m.log.Warn("Clipboard copy failed", "error", err)
	}
}

func (m *GameUI) applyLoaded(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	m.mode = modePlay
	if msg.err != nil {
		m.log.Error("Load failed", "slot", msg.slot, "error", msg.err)
		return *m, m.setError("Load failed: " + msg.err.Error())
	}
	if msg.sd == nil {
		return *m, m.setMessage(fmt.Sprintf("Slot %d is empty.", msg.slot))
	}
	if err := savegame.Apply(msg.sd, m.gs); err != nil {
		m.log.Error("Save data rejected", "slot", msg.slot, "error", err)
		return *m, m.setError("Load failed: " + err.Error())
	}
	if msg.slot == storage.AutoSlot {
		return *m, m.setMessage("Welcome back, Lamplighter.")
	}
	return *m, m.setMessage(fmt.Sprintf("Loaded slot %d.", msg.slot))
}

// Snapshot is taken on the UI goroutine; only the store write runs in
// the command.
func (m GameUI) autosave() tea.Cmd {
	sd := savegame.Snapshot(m.gs)
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return autosaveDoneMsg{err: store.SaveSlot(ctx, storage.AutoSlot, sd)}
	}
}

func (m GameUI) saveSlot(slot int, sd *savegame.SaveData) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return saveDoneMsg{slot: slot, err: store.SaveSlot(ctx, slot, sd)}
	}
}

func (m GameUI) loadSlot(slot int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		sd, err := store.LoadSlot(ctx, slot)
		return loadDoneMsg{slot: slot, sd: sd, err: err}
	}
}

func (m GameUI) fetchSlots() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		slots, err := store.ListSlots(ctx)
		return slotsLoadedMsg{slots: slots, err: err}
	}
}

func (m GameUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	switch m.mode {
	case modeIntro:
		return m.renderIntro()
	case modeQuit:
		return m.renderQuitModal()
	case modeMenu:
		return m.renderMenu()
	case modePager:
		return mapPanelStyle.Render(m.pager.View())
	}

	mapPanel := mapPanelStyle.Render(
		roomNameStyle.Render(m.roomName()) + "\n\n" + m.renderMap(),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, metaPanelStyle.Render(m.renderStatus()))

	var bottom strings.Builder
	bottom.WriteString(separatorStyle.Render(strings.Repeat("─", min(m.width-4, 76))) + "\n")
	if m.message != "" {
		style := messageStyle
		if m.msgErr {
			style = errorStyle
		}
		bottom.WriteString(style.Render(wordwrap.String(m.message, min(m.width-4, 76))) + "\n")
	}
	if m.mode == modeCommand {
		bottom.WriteString(m.input.View())
	} else {
		bottom.WriteString(promptStyle.Render("Arrows to move. Type to command. HELP for help."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, mapPanelStyle.Render(bottom.String()))
}

func (m GameUI) roomName() string {
	if room := m.gs.World.CurrentRoom(); room != nil {
		return room.Name
	}
	return ""
}

// renderMap draws the current room with items, fonts, spirits and the
// player overlaid on the grid.
func (m GameUI) renderMap() string {
	room := m.gs.World.CurrentRoom()
	if room == nil {
		return ""
	}

	type marker struct {
		glyph rune
		style lipgloss.Style
	}
	overlay := make(map[world.Position]marker)
	for pos := range room.Items() {
		overlay[pos] = marker{'*', itemStyle}
	}
	for pos := range room.Fonts() {
		overlay[pos] = marker{'F', fontStyle}
	}
	for pos := range room.Spirits() {
		overlay[pos] = marker{'†', spiritStyle}
	}
	overlay[m.gs.Player.Position()] = marker{'@', playerStyle}

	var b strings.Builder
	for row := 0; row < room.Rows(); row++ {
		for col := 0; col < room.RowLen(row); col++ {
			pos := world.Position{Row: row, Col: col}
			if mk, ok := overlay[pos]; ok {
				b.WriteString(mk.style.Render(string(mk.glyph)))
				continue
			}
			b.WriteRune(room.CharacterAt(pos))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m GameUI) renderStatus() string {
	p := m.gs.Player

	var b strings.Builder
	b.WriteString(titleStyle.Render(GameTitle) + "\n\n")

	warning := p.Warning()
	label := titleCaser.String(string(warning))
	b.WriteString("Lantern:\n")
	b.WriteString(m.renderOilGauge() + "\n")
	b.WriteString(warningStyles[warning].Render(fmt.Sprintf("%.1f%% (%s)", p.Oil(), label)) + "\n\n")

	geode := p.Geode()
	if geode == "" {
		geode = "none"
	}
	b.WriteString("Geode: " + geode + "\n\n")

	b.WriteString("Inventory:\n")
	for i, item := range p.Inventory() {
		if item == "" {
			item = promptStyle.Render("(empty)")
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Moves: %d\n", m.gs.TotalMoves))
	b.WriteString("Difficulty: " + m.gs.Difficulty.CurrentSettings().Name + "\n\n")

	b.WriteString(promptStyle.Render("Ctrl+Y: copy message") + "\n")
	b.WriteString(promptStyle.Render("Esc: quit"))
	return b.String()
}

func (m GameUI) renderOilGauge() string {
	oil := m.gs.Player.Oil()
	filled := int(oil / player.MaxOil * oilGaugeWidth)
	if filled > oilGaugeWidth {
		filled = oilGaugeWidth
	}

	var bar strings.Builder
	for i := 0; i < oilGaugeWidth; i++ {
		if i < filled {
			bar.WriteRune('█')
		} else {
			bar.WriteRune('░')
		}
	}
	return warningStyles[m.gs.Player.Warning()].Render(bar.String())
}

func (m GameUI) renderIntro() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(GameTitle))
	content.WriteString("\n\n")
	content.WriteString("The beacon of spectral blue burns over the waves.\n")
	content.WriteString("You carry the Meridian Light into the deep.\n\n")

	for i, option := range m.introOptions() {
		if i == m.introCursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ "+option) + "\n")
		} else {
			content.WriteString(modalItemStyle.Render("  "+option) + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("↑/↓ to choose, Enter to begin, Esc to leave"))

	modal := modalStyle.Width(56).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the Cathedral?"))
	content.WriteString("\n\n")
	content.WriteString("Your progress is autosaved.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to keep playing"))

	modal := modalStyle.Width(46).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderMenu() string {
	var content strings.Builder

	switch {
	case m.loadingSlots:
		content.WriteString(modalTitleStyle.Render("Reading Slots..."))

	case m.menu == menuSettings:
		content.WriteString(modalTitleStyle.Render("Difficulty"))
		content.WriteString("\n\n")
		for i, level := range difficulty.Levels() {
			s := difficulty.GetSettings(level)
			line := fmt.Sprintf("%s - %s", s.Name, s.Description)
			if i == m.menuCursor {
				content.WriteString(modalSelectedItemStyle.Render("▶ "+line) + "\n")
			} else {
				content.WriteString(modalItemStyle.Render("  "+line) + "\n")
			}
		}

	default:
		if m.menu == menuSave {
			content.WriteString(modalTitleStyle.Render("Save Game"))
		} else {
			content.WriteString(modalTitleStyle.Render("Load Game"))
		}
		content.WriteString("\n\n")
		for i, info := range m.slots {
			line := fmt.Sprintf("Slot %d: empty", info.Slot)
			if info.Exists {
				line = fmt.Sprintf("Slot %d: %s, %d moves, %s",
					info.Slot,
					info.SavedAt.Format("Jan 2 15:04"),
					info.TotalMoves,
					titleCaser.String(info.Difficulty))
			}
			if i == m.menuCursor {
				content.WriteString(modalSelectedItemStyle.Render("▶ "+line) + "\n")
			} else {
				content.WriteString(modalItemStyle.Render("  "+line) + "\n")
			}
		}
	}

	content.WriteString("\n")
	content.WriteString(promptStyle.Render("↑/↓ to choose, Enter to select, Esc to cancel"))

	modal := modalStyle.Width(64).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}
