// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/imnatgreen/heatapp/pkg/heatapp"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive TUI monitoring the hub's zones",
	Long: `Monitor every zone in an interactive terminal UI.

Zones are polled on an interval; each poll is one temperature read per
zone through the hub's serialized channel. Select a zone, type a target
temperature and press enter to apply it.

Keys:
  tab        switch between zone list and target input
  enter      apply the entered target to the selected zone
  r          poll now
  q, ctrl+c  quit`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "Poll interval")
}

// Focus states
const (
	focusZoneList = iota
	focusTargetInput
)

var (
	watchTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	watchStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	watchErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	watchHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// zoneItem is one zone row in the list.
type zoneItem struct {
	id        int
	unitCount int
	power     int

	current int
	target  int
	hasTemp bool
	polled  bool
}

// Implement list.Item interface
func (z zoneItem) Title() string {
	return fmt.Sprintf("Zone %d (%d unit(s), %d W)", z.id, z.unitCount, z.power)
}

func (z zoneItem) Description() string {
	if !z.polled {
		return "waiting for first poll"
	}
	if !z.hasTemp {
		return "no answer"
	}
	return fmt.Sprintf("current %d°C, target %d°C", z.current, z.target)
}

func (z zoneItem) FilterValue() string { return strconv.Itoa(z.id) }

// Messages
type watchTickMsg time.Time

type zoneReading struct {
	id      int
	current int
	target  int
	ok      bool
}

type readingsMsg struct {
	readings []zoneReading
	ready    bool
}

type setResultMsg struct {
	id     int
	target int
	ok     bool
}

type watchModel struct {
	hub       *heatapp.Hub
	radiators []*heatapp.Radiator
	connInfo  string
	interval  time.Duration

	zoneList    list.Model
	targetInput textinput.Model
	focused     int

	polling    bool
	ready      bool
	lastPoll   time.Time
	statusLine string
	width      int
	height     int
	quitting   bool
}

func initialWatchModel(hub *heatapp.Hub, radiators []*heatapp.Radiator, connInfo string, interval time.Duration) watchModel {
	items := make([]list.Item, len(radiators))
	for i, rad := range radiators {
		items[i] = zoneItem{id: rad.ID, unitCount: rad.UnitCount, power: rad.Power}
	}

	delegate := list.NewDefaultDelegate()
	zoneList := list.New(items, delegate, 0, 0)
	zoneList.Title = "Zones"
	zoneList.SetShowHelp(false)
	zoneList.SetFilteringEnabled(false)

	input := textinput.New()
	input.Placeholder = "target °C"
	input.CharLimit = 3
	input.Width = 12

	return watchModel{
		hub:         hub,
		radiators:   radiators,
		connInfo:    connInfo,
		interval:    interval,
		zoneList:    zoneList,
		targetInput: input,
		focused:     focusZoneList,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(pollZones(m.hub, m.radiators), watchTick(m.interval))
}

// pollZones reads every zone once. It runs in a Bubble Tea command
// goroutine; the hub's channel serializes it against any set command.
func pollZones(hub *heatapp.Hub, radiators []*heatapp.Radiator) tea.Cmd {
	return func() tea.Msg {
		msg := readingsMsg{ready: hub.Ready()}
		for _, rad := range radiators {
			reading := zoneReading{id: rad.ID}
			if temp, ok := rad.Temperature(); ok {
				reading.current = temp.Current
				reading.target = temp.Target
				reading.ok = true
			}
			msg.readings = append(msg.readings, reading)
		}
		return msg
	}
}

func applyTarget(rad *heatapp.Radiator, target int) tea.Cmd {
	return func() tea.Msg {
		return setResultMsg{id: rad.ID, target: target, ok: rad.SetTemperature(target)}
	}
}

func watchTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.zoneList.SetSize(msg.Width-2, msg.Height-7)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.focused == focusTargetInput && msg.String() == "q" {
				break // let "q" be typed into the input
			}
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focused == focusZoneList {
				m.focused = focusTargetInput
				m.targetInput.Focus()
			} else {
				m.focused = focusZoneList
				m.targetInput.Blur()
			}
			return m, nil
		case "r":
			if m.focused == focusZoneList && !m.polling {
				m.polling = true
				return m, pollZones(m.hub, m.radiators)
			}
		case "enter":
			if m.focused == focusTargetInput {
				return m.applyInput()
			}
		}

	case watchTickMsg:
		cmds := []tea.Cmd{watchTick(m.interval)}
		if !m.polling {
			m.polling = true
			cmds = append(cmds, pollZones(m.hub, m.radiators))
		}
		return m, tea.Batch(cmds...)

	case readingsMsg:
		m.polling = false
		m.ready = msg.ready
		m.lastPoll = time.Now()
		items := m.zoneList.Items()
		for i, item := range items {
			zone := item.(zoneItem)
			for _, reading := range msg.readings {
				if reading.id == zone.id {
					zone.polled = true
					zone.hasTemp = reading.ok
					zone.current = reading.current
					zone.target = reading.target
				}
			}
			items[i] = zone
		}
		return m, m.zoneList.SetItems(items)

	case setResultMsg:
		if msg.ok {
			m.statusLine = fmt.Sprintf("zone %d target set to %d°C", msg.id, msg.target)
			m.polling = true
			return m, pollZones(m.hub, m.radiators)
		}
		m.statusLine = watchErrorStyle.Render(fmt.Sprintf("zone %d did not accept target %d", msg.id, msg.target))
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == focusTargetInput {
		m.targetInput, cmd = m.targetInput.Update(msg)
	} else {
		m.zoneList, cmd = m.zoneList.Update(msg)
	}
	return m, cmd
}

func (m watchModel) applyInput() (tea.Model, tea.Cmd) {
	target, err := strconv.Atoi(m.targetInput.Value())
	if err != nil {
		m.statusLine = watchErrorStyle.Render(fmt.Sprintf("invalid target %q", m.targetInput.Value()))
		return m, nil
	}

	selected, ok := m.zoneList.SelectedItem().(zoneItem)
	if !ok {
		return m, nil
	}
	for _, rad := range m.radiators {
		if rad.ID == selected.id {
			m.statusLine = fmt.Sprintf("setting zone %d to %d°C...", rad.ID, target)
			m.targetInput.SetValue("")
			return m, applyTarget(rad, target)
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	title := watchTitleStyle.Render(fmt.Sprintf("heatapp %s — %s", m.hub.DeviceID, m.connInfo))

	status := "hub: not ready"
	if m.ready {
		status = "hub: ready"
	}
	if m.polling {
		status += " · polling..."
	} else if !m.lastPoll.IsZero() {
		status += fmt.Sprintf(" · polled %s", m.lastPoll.Format("15:04:05"))
	}

	help := watchHelpStyle.Render("tab: focus · enter: set target · r: poll now · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.zoneList.View(),
		"Target: "+m.targetInput.View(),
		watchStatusStyle.Render(status),
		m.statusLine,
		help,
	)
}

func runWatch(cmd *cobra.Command, args []string) error {
	hub, connInfo, err := openHub()
	if err != nil {
		return err
	}
	defer hub.Close()

	radiators := make([]*heatapp.Radiator, 0, len(hub.RadiatorIDs))
	for _, id := range hub.RadiatorIDs {
		rad, err := heatapp.NewRadiator(hub, id)
		if err != nil {
			return fmt.Errorf("zone %d: %w", id, err)
		}
		radiators = append(radiators, rad)
	}

	m := initialWatchModel(hub, radiators, connInfo, watchInterval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}
