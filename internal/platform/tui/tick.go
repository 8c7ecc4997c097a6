// Package tui provides the Bubble Tea integration for the snake platform:
// the terminal UI loop, input mapping, rendering, and the SSH server.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkuksa/termsnake/internal/facts"
)

// TickMsg drives one snake movement step. Gen identifies the timer
// generation: the model bumps its generation whenever play stops, so messages
// from a cancelled timer are recognized and dropped.
type TickMsg struct {
	Gen int
}

// CountdownMsg advances the pre-round countdown by one label.
// Gen works like TickMsg.Gen.
type CountdownMsg struct {
	Gen int
}

// factMsg delivers the home-screen fun fact (or its fallback).
type factMsg struct {
	text string
}

// tickCmd schedules the next movement tick.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// countdownCmd schedules the next countdown step.
func countdownCmd(step time.Duration, gen int) tea.Cmd {
	return tea.Tick(step, func(time.Time) tea.Msg {
		return CountdownMsg{Gen: gen}
	})
}

// fetchFactCmd fetches the fun fact in the background. It always delivers a
// factMsg; failures surface as the fallback text.
func fetchFactCmd(client *facts.Client, prompt string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return factMsg{text: client.FunFact(ctx, prompt)}
	}
}
