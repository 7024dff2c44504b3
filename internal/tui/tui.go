// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the client. It renders the
// product list and forms with bubbletea and receives sync results through a
// [ProgramDispatcher], so every callback runs on the program's event loop.
package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type TUI struct {
	products   service.ClientProductService
	dispatcher *ProgramDispatcher
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
	box        *mailbox
}

func New(products service.ClientProductService, dispatcher *ProgramDispatcher, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		products:   products,
		dispatcher: dispatcher,
		buildInfo:  buildInfo,
		logger:     log,
		box:        &mailbox{},
	}
}

// Run shows the product screen until the user quits or ctx is cancelled.
// onStart is called once the program can accept deliveries and receives the
// callback that background refreshes should report to.
func (t *TUI) Run(ctx context.Context, onStart func(refresh service.Callback[[]models.Product])) error {
	model := newMainLoopModel(ctx, t.products, t.box, clipboard.WriteAll)
	program := tea.NewProgram(NewRootModel(model, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	t.dispatcher.bind(program)
	if onStart != nil {
		onStart(model.backgroundCallback())
	}

	t.logger.Info().Msg("starting terminal UI")
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("terminal UI stopped by context")
			return nil
		}
		return fmt.Errorf("terminal UI: %w", err)
	}
	t.logger.Info().Msg("terminal UI closed")

	return nil
}
